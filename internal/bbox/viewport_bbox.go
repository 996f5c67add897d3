package bbox

import (
	"github.com/samber/lo"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// Quad is anything with four corners and a containment test in the same
// plane: boxes of this package and object.OwnBBox alike.
type Quad interface {
	Coords() Coords
	ContainsPoint(p geom.Point) bool
}

// ViewportBBox is a box expressed in viewport space, that is after the
// canvas pan/zoom. Predicates between two ViewportBBoxes compare their
// viewport-space corners.
type ViewportBBox struct {
	PlaneBBox
	viewport Plane
	retina   Plane
}

// NewViewportBBox wraps a viewport-space box.
func NewViewportBBox(b PlaneBBox, viewport, retina Plane) ViewportBBox {
	return ViewportBBox{PlaneBBox: b, viewport: viewport, retina: retina}
}

// ViewportTransform returns the current viewport matrix.
func (b ViewportBBox) ViewportTransform() geom.Matrix {
	return b.viewport.Resolve()
}

// SendToPlane re-expresses the box in target: the result maps the origin
// space into target's coordinates. A singular viewport or target yields NaN.
func (b ViewportBBox) SendToPlane(target Plane) PlaneBBox {
	to := geom.MultiplyChain(b.viewport.Resolve(), target.Resolve()).Invert()
	return New(to.Multiply(b.transform))
}

// SendToCanvas re-expresses the box in scene coordinates.
func (b ViewportBBox) SendToCanvas() PlaneBBox {
	return b.SendToPlane(IdentityPlane)
}

// RetinaCoords returns the corners in device pixels.
func (b ViewportBBox) RetinaCoords() Coords {
	return b.Coords().Transform(b.retina.Resolve())
}

// Intersects reports whether the outlines of the two boxes cross or share
// an edge.
func (b ViewportBBox) Intersects(other Quad) bool {
	in := geom.IntersectPolygonPolygon(b.Coords().Points(), other.Coords().Points())
	return in.Status == geom.StatusIntersection || in.Status == geom.StatusCoincident
}

// Contains reports whether every corner of other lies inside b.
func (b ViewportBBox) Contains(other Quad) bool {
	return lo.EveryBy(other.Coords().Points(), b.ContainsPoint)
}

// IsContainedBy reports whether every corner of b lies inside other.
func (b ViewportBBox) IsContainedBy(other Quad) bool {
	return lo.EveryBy(b.Coords().Points(), other.ContainsPoint)
}

// Overlaps reports whether the boxes intersect or one contains the other.
func (b ViewportBBox) Overlaps(other Quad) bool {
	return b.Intersects(other) || b.Contains(other) || b.IsContainedBy(other)
}
