package object

import (
	"github.com/inamate/inamate/canvas-go/internal/bbox"
	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// Scale sets both axis scales to v.
func (o *Object) Scale(v float64) {
	o.ScaleX, o.ScaleY = v, v
}

// ScaleToWidth scales the object uniformly so that its rotated box is value
// wide. The width is measured in scene units when absolute is set, in
// viewport units otherwise.
func (o *Object) ScaleToWidth(value float64, absolute bool) {
	o.scaleToSize(value, absolute, func(p geom.Point) float64 { return p.X })
}

// ScaleToHeight is ScaleToWidth for the height.
func (o *Object) ScaleToHeight(value float64, absolute bool) {
	o.scaleToSize(value, absolute, func(p geom.Point) float64 { return p.Y })
}

// scaleToSize solves size(s) = value for the uniform scale s. The rotated
// box size is affine in s (the uniform stroke padding is the constant
// term), so two samples determine it.
func (o *Object) scaleToSize(value float64, absolute bool, axis func(geom.Point) float64) {
	sx, sy := o.ScaleX, o.ScaleY
	measure := func(s float64) float64 {
		o.Scale(s)
		b := o.BBox(bbox.KindRotated)
		if absolute {
			return axis(b.SendToCanvas().Dimensions())
		}
		return axis(b.Dimensions())
	}
	at1, at2 := measure(1), measure(2)
	slope := at2 - at1
	if slope == 0 || !geom.Pt(slope, at1).IsFinite() {
		Logger().Debug("cannot scale to size", "object", o.ID, "size", value)
		o.ScaleX, o.ScaleY = sx, sy
		return
	}
	o.Scale(1 + (value-at1)/slope)
}

// Rotate turns the object so that its total angle on screen, ancestors
// included, becomes angle degrees. The origin point stays in place, or the
// center when CenteredRotation is set.
func (o *Object) Rotate(angle float64) {
	opts := o.composeOptions()
	opts.FlipX, opts.FlipY = false, false
	own := geom.Compose(opts)
	parent := o.parentPlane()

	total := geom.MultiplyChain(parent, own)
	delta := geom.RotateMatrix(angle-geom.Decompose(total).Angle, geom.Point{})
	next := geom.MultiplyChain(parent.Invert(), delta, total)
	turn := geom.Decompose(next).Angle - geom.Decompose(own).Angle

	center := o.RelativeCenterPoint()
	o.Angle = geom.NormalizeDegrees(o.Angle + turn)
	if o.CenteredRotation {
		o.SetPositionByOrigin(center, OriginCenter, OriginCenter)
	}
}

// ApplyTransform replaces the object's placement with m, a matrix from its
// center-based local space into the parent plane. Flips are folded into
// scale and angle.
func (o *Object) ApplyTransform(m geom.Matrix) {
	d := geom.Decompose(m)
	o.FlipX, o.FlipY = false, false
	o.Angle = d.Angle
	o.SkewX, o.SkewY = d.SkewX, d.SkewY
	o.ScaleX, o.ScaleY = d.ScaleX, d.ScaleY
	o.SetPositionByOrigin(geom.Pt(d.TranslateX, d.TranslateY), OriginCenter, OriginCenter)
}
