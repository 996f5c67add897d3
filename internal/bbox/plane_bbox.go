package bbox

import (
	"math"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// PlaneBBox is a box in a single plane, held as the matrix that maps the
// normalized origin space [-0.5, 0.5]² onto it.
type PlaneBBox struct {
	transform geom.Matrix
}

// New returns the box whose origin transform is m.
func New(m geom.Matrix) PlaneBBox {
	return PlaneBBox{transform: m}
}

// FromCoords builds a box from its corners, using the top edge and the left
// edge as axes and the midpoint of the TL-BR diagonal as center. The corners
// are assumed to form a parallelogram; BR only contributes to the center.
func FromCoords(c Coords) PlaneBBox {
	return New(geom.BaseChange(
		c.TR.Sub(c.TL),
		c.BL.Sub(c.TL),
		c.TL.MidPointFrom(c.BR),
	))
}

// FromRect builds an axis-aligned box.
func FromRect(r geom.Rect) PlaneBBox {
	return New(geom.BaseChange(
		geom.Pt(r.Width, 0),
		geom.Pt(0, r.Height),
		r.Center(),
	))
}

// Transform returns the origin transform.
func (b PlaneBBox) Transform() geom.Matrix {
	return b.transform
}

// Coords returns the corners in the box's plane.
func (b PlaneBBox) Coords() Coords {
	return unitCoords.Transform(b.transform)
}

// Center returns the box center.
func (b PlaneBBox) Center() geom.Point {
	return b.transform.Translation()
}

// Rotation returns the angle of the top edge in radians.
func (b PlaneBBox) Rotation() float64 {
	return math.Atan2(b.transform[1], b.transform[0])
}

// Dimensions returns the lengths of the top and left edges.
func (b PlaneBBox) Dimensions() geom.Point {
	return geom.Pt(b.xAxis().Length(), b.yAxis().Length())
}

// BoundingRect returns the axis-aligned rect around the corners.
func (b PlaneBBox) BoundingRect() geom.Rect {
	return b.Coords().BoundingRect()
}

// PointFromOrigin maps a point of the origin space into the plane.
func (b PlaneBBox) PointFromOrigin(p geom.Point) geom.Point {
	return b.transform.TransformPoint(p)
}

// PointToOrigin maps a plane point into the origin space.
func (b PlaneBBox) PointToOrigin(p geom.Point) geom.Point {
	return b.transform.Invert().TransformPoint(p)
}

// TranslateOrigin returns the transform re-anchored so that the origin
// space point origin (for example (-0.5, -0.5) for the top-left corner)
// becomes (0, 0).
func (b PlaneBBox) TranslateOrigin(origin geom.Point) geom.Matrix {
	return b.transform.Multiply(geom.TranslateMatrix(origin.X, origin.Y))
}

// ContainsPoint reports whether p, in the box's plane, lies inside the box.
// Edges are inside.
func (b PlaneBBox) ContainsPoint(p geom.Point) bool {
	o := b.PointToOrigin(p)
	return o.X >= -0.5 && o.X <= 0.5 && o.Y >= -0.5 && o.Y <= 0.5
}

// Translate moves the box by v.
func (b PlaneBBox) Translate(v geom.Point) PlaneBBox {
	return New(geom.TranslateMatrix(v.X, v.Y).Multiply(b.transform))
}

// Rotate rotates the box by radians around pivot.
func (b PlaneBBox) Rotate(radians float64, pivot geom.Point) PlaneBBox {
	r := geom.RotateMatrix(geom.RadiansToDegrees(radians), pivot)
	return New(r.Multiply(b.transform))
}

// Inflate grows the box by dx along its top edge and dy along its left edge,
// keeping the center. A collapsed edge grows along the normal of the other.
func (b PlaneBBox) Inflate(dx, dy float64) PlaneBBox {
	x, y := b.xAxis(), b.yAxis()
	ux, uy := geom.UnitVector(x), geom.UnitVector(y)
	if !uy.IsFinite() {
		uy = geom.Pt(0, 1)
		if ux.IsFinite() {
			uy = geom.OrthonormalVector(ux, true)
		}
	}
	if !ux.IsFinite() {
		ux = geom.OrthonormalVector(uy, false)
	}
	return New(geom.BaseChange(x.Add(ux.Mul(dx)), y.Add(uy.Mul(dy)), b.Center()))
}

func (b PlaneBBox) xAxis() geom.Point {
	return geom.Pt(b.transform[0], b.transform[1])
}

func (b PlaneBBox) yAxis() geom.Point {
	return geom.Pt(b.transform[2], b.transform[3])
}
