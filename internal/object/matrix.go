package object

import (
	"github.com/inamate/inamate/canvas-go/internal/bbox"
	"github.com/inamate/inamate/canvas-go/internal/geom"
)

func (o *Object) composeOptions() geom.ComposeOptions {
	center := o.RelativeCenterPoint()
	return geom.ComposeOptions{
		Angle:      o.Angle,
		ScaleX:     o.ScaleX,
		ScaleY:     o.ScaleY,
		SkewX:      o.SkewX,
		SkewY:      o.SkewY,
		FlipX:      o.FlipX,
		FlipY:      o.FlipY,
		TranslateX: center.X,
		TranslateY: center.Y,
	}
}

// Placement returns the components the own matrix is composed from.
func (o *Object) Placement() geom.ComposeOptions {
	return o.composeOptions()
}

// CalcOwnMatrix returns the matrix placing the object's center-based local
// space into its parent plane. It is cached until a property it depends on
// changes.
func (o *Object) CalcOwnMatrix() geom.Matrix {
	return o.ownMatrix.get(o.ownMatrixKey(), func() geom.Matrix {
		return geom.Compose(o.composeOptions())
	})
}

// CalcTransformMatrix returns the matrix placing the object's local space
// into the scene, ancestors included unless skipAncestors is set.
func (o *Object) CalcTransformMatrix(skipAncestors bool) geom.Matrix {
	if skipAncestors || o.parent == nil {
		return o.CalcOwnMatrix()
	}
	return o.fullMatrix.get(o.matrixKey(), func() geom.Matrix {
		return geom.MultiplyChain(o.parent.CalcTransformMatrix(false), o.CalcOwnMatrix())
	})
}

func (o *Object) selfPlane() geom.Matrix {
	return o.CalcOwnMatrix()
}

func (o *Object) parentPlane() geom.Matrix {
	if o.parent == nil {
		return geom.Identity()
	}
	return o.parent.CalcTransformMatrix(false)
}

func (o *Object) viewportPlane() geom.Matrix {
	if c := o.Canvas(); c != nil {
		return c.ViewportTransform()
	}
	return geom.Identity()
}

func (o *Object) retinaPlane() geom.Matrix {
	if c := o.Canvas(); c != nil {
		return c.retinaMatrix()
	}
	return geom.Identity()
}

// Planes returns lazy accessors for the object's four planes. They resolve
// against the object's state at call time.
func (o *Object) Planes() bbox.Planes {
	return bbox.Planes{
		Self:     o.selfPlane,
		Parent:   o.parentPlane,
		Viewport: o.viewportPlane,
		Retina:   o.retinaPlane,
	}
}

// BBox builds the object's box of the given kind in viewport space.
func (o *Object) BBox(kind bbox.Kind) bbox.BBox {
	b := bbox.Of(o, kind)
	if !b.Coords().IsFinite() {
		Logger().Debug("non-finite bbox", "object", o.ID, "kind", kind.String())
	}
	return b
}

// OwnBBox returns a box that follows the object's planes lazily.
func (o *Object) OwnBBox() bbox.OwnBBox {
	return bbox.NewOwnBBox(o)
}
