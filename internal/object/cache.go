package object

import "github.com/inamate/inamate/canvas-go/internal/geom"

// matrixCache memoizes one matrix against the key it was computed from.
type matrixCache[K comparable] struct {
	key   K
	value geom.Matrix
	valid bool
}

func (c *matrixCache[K]) get(key K, compute func() geom.Matrix) geom.Matrix {
	if c.valid && c.key == key {
		return c.value
	}
	c.key, c.value, c.valid = key, compute(), true
	return c.value
}

// ownMatrixKey holds every property that affects the own matrix.
type ownMatrixKey struct {
	left, top        float64
	width, height    float64
	scaleX, scaleY   float64
	skewX, skewY     float64
	angle            float64
	flipX, flipY     bool
	originX, originY float64
	strokeWidth      float64
	strokeUniform    bool
}

// matrixKey extends ownMatrixKey with the parent's full matrix.
type matrixKey struct {
	own       ownMatrixKey
	parent    geom.Matrix
	hasParent bool
}

func (o *Object) ownMatrixKey() ownMatrixKey {
	return ownMatrixKey{
		left: o.Left, top: o.Top,
		width: o.Width, height: o.Height,
		scaleX: o.ScaleX, scaleY: o.ScaleY,
		skewX: o.SkewX, skewY: o.SkewY,
		angle: o.Angle,
		flipX: o.FlipX, flipY: o.FlipY,
		originX: o.OriginX, originY: o.OriginY,
		strokeWidth:   o.StrokeWidth,
		strokeUniform: o.StrokeUniform,
	}
}

func (o *Object) matrixKey() matrixKey {
	k := matrixKey{own: o.ownMatrixKey()}
	if o.parent != nil {
		k.parent = o.parent.CalcTransformMatrix(false)
		k.hasParent = true
	}
	return k
}
