package geom

import "math"

// ComposeOptions are the components of an object placement. Angles are in
// degrees. ScaleX and ScaleY are used verbatim, so the identity scale is 1.
type ComposeOptions struct {
	Angle      float64
	ScaleX     float64
	ScaleY     float64
	SkewX      float64
	SkewY      float64
	FlipX      bool
	FlipY      bool
	TranslateX float64
	TranslateY float64
}

// Decomposition is the result of Decompose. Angles are in degrees.
type Decomposition struct {
	Angle      float64
	ScaleX     float64
	ScaleY     float64
	SkewX      float64
	SkewY      float64
	TranslateX float64
	TranslateY float64
}

// DimensionsMatrix returns the linear scale/flip/skew part of a placement:
// Scale(±sx, ±sy) * SkewX * SkewY.
func DimensionsMatrix(o ComposeOptions) Matrix {
	sx, sy := o.ScaleX, o.ScaleY
	if o.FlipX {
		sx = -sx
	}
	if o.FlipY {
		sy = -sy
	}
	m := ScaleMatrix(sx, sy)
	if o.SkewX != 0 {
		m = m.Multiply2x2(SkewXMatrix(o.SkewX))
	}
	if o.SkewY != 0 {
		m = m.Multiply2x2(SkewYMatrix(o.SkewY))
	}
	return m
}

// Compose builds Translate * Rotate * DimensionsMatrix.
func Compose(o ComposeOptions) Matrix {
	m := TranslateMatrix(o.TranslateX, o.TranslateY)
	if o.Angle != 0 {
		m = m.Multiply(RotateMatrix(o.Angle, Point{}))
	}
	if dim := DimensionsMatrix(o); !dim.IsIdentity() {
		m = m.Multiply(dim)
	}
	return m
}

// Decompose recovers placement components from m using a QR-style
// decomposition. SkewY is always reported as 0: a vertical skew is folded
// into Angle and SkewX, so Compose(Decompose(m)) reproduces m but the
// components may differ from the ones m was composed from. A flip shows up
// as a negative ScaleY (and, for a horizontal flip, a 180° angle offset).
func Decompose(m Matrix) Decomposition {
	a, b, c, d := m[0], m[1], m[2], m[3]
	denom := a*a + b*b
	scaleX := math.Sqrt(denom)
	return Decomposition{
		Angle:      RadiansToDegrees(math.Atan2(b, a)),
		ScaleX:     scaleX,
		ScaleY:     (a*d - c*b) / scaleX,
		SkewX:      RadiansToDegrees(math.Atan2(a*c+b*d, denom)),
		SkewY:      0,
		TranslateX: m[4],
		TranslateY: m[5],
	}
}

// Options converts the decomposition back into compose options.
func (d Decomposition) Options() ComposeOptions {
	return ComposeOptions{
		Angle:      d.Angle,
		ScaleX:     d.ScaleX,
		ScaleY:     d.ScaleY,
		SkewX:      d.SkewX,
		SkewY:      d.SkewY,
		TranslateX: d.TranslateX,
		TranslateY: d.TranslateY,
	}
}
