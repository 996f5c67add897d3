package object

import (
	"github.com/inamate/inamate/canvas-go/internal/bbox"
	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// Coords returns the corners of the rotated box, in scene coordinates when
// absolute is set and in the parent plane otherwise.
func (o *Object) Coords(absolute bool) bbox.Coords {
	b := o.BBox(bbox.KindRotated)
	if absolute {
		return b.SendToCanvas().Coords()
	}
	return b.SendToParent().Coords()
}

// ContainsPoint reports whether the scene point p is inside the object's
// rotated box. The boundary is inside.
func (o *Object) ContainsPoint(p geom.Point) bool {
	return o.ContainsViewportPoint(o.viewportPlane().TransformPoint(p))
}

// ContainsViewportPoint is ContainsPoint for a point already in viewport
// coordinates, such as a pointer position.
func (o *Object) ContainsViewportPoint(p geom.Point) bool {
	return o.BBox(bbox.KindRotated).ContainsPoint(p)
}

// IntersectsWithObject reports whether the outlines of the two objects
// cross or touch.
func (o *Object) IntersectsWithObject(other *Object) bool {
	return o.BBox(bbox.KindRotated).Intersects(other.BBox(bbox.KindRotated))
}

// IntersectsWithRect reports whether the object's outline crosses the
// scene rect spanned by tl and br.
func (o *Object) IntersectsWithRect(tl, br geom.Point) bool {
	in := geom.IntersectPolygonRectangle(o.Coords(true).Points(), tl, br)
	return in.Status == geom.StatusIntersection
}

// IsContainedWithinObject reports whether o lies entirely inside other.
func (o *Object) IsContainedWithinObject(other *Object) bool {
	return o.BBox(bbox.KindRotated).IsContainedBy(other.BBox(bbox.KindRotated))
}

// IsContainedWithinRect reports whether o's bounding rect lies inside the
// scene rect spanned by tl and br.
func (o *Object) IsContainedWithinRect(tl, br geom.Point) bool {
	r := o.BoundingRect()
	return r.X >= tl.X && r.X+r.Width <= br.X && r.Y >= tl.Y && r.Y+r.Height <= br.Y
}

// IsOverlapping reports whether the objects intersect or one contains the
// other.
func (o *Object) IsOverlapping(other *Object) bool {
	return o.BBox(bbox.KindRotated).Overlaps(other.BBox(bbox.KindRotated))
}

// IsOnScreen reports whether any part of the object is in the visible area.
// Objects not on a canvas are never on screen.
func (o *Object) IsOnScreen() bool {
	c := o.Canvas()
	if c == nil {
		return false
	}
	return o.BBox(bbox.KindRotated).Overlaps(c.BBox())
}

// IsPartiallyOnScreen reports whether the object crosses the edge of the
// visible area.
func (o *Object) IsPartiallyOnScreen() bool {
	c := o.Canvas()
	if c == nil {
		return false
	}
	return o.BBox(bbox.KindRotated).Intersects(c.BBox())
}

// BoundingRect returns the axis-aligned scene rect around the object.
func (o *Object) BoundingRect() geom.Rect {
	return o.Coords(true).BoundingRect()
}
