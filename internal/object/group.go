package object

import (
	"slices"

	"github.com/samber/lo"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// NewGroup wraps children in a group fitted around them. The children keep
// their scene placement; their properties become relative to the group.
func NewGroup(id string, children ...*Object) *Object {
	g := New(id, TypeGroup, 0, 0)
	g.StrokeWidth = 0
	g.OriginX, g.OriginY = OriginCenter, OriginCenter

	points := lo.FlatMap(children, func(c *Object, _ int) []geom.Point {
		return c.Coords(true).Points()
	})
	r := geom.BoundingRect(points...)
	g.Width, g.Height = r.Width, r.Height
	c := r.Center()
	g.Left, g.Top = c.X, c.Y

	g.AddKeepingPosition(children...)
	return g
}

// Add appends children whose properties are already relative to the group
// plane. Children are detached from their previous owner first.
func (o *Object) Add(children ...*Object) {
	for _, c := range children {
		c.detach()
		c.parent = o
		o.children = append(o.children, c)
	}
}

// AddKeepingPosition appends children given in scene placement, rewriting
// their properties so they stay where they are.
func (o *Object) AddKeepingPosition(children ...*Object) {
	inv := o.CalcTransformMatrix(false).Invert()
	for _, c := range children {
		full := c.CalcTransformMatrix(false)
		c.ApplyTransform(inv.Multiply(full))
		o.Add(c)
	}
}

// Remove takes child out of the group, keeping its scene placement. It
// reports whether child was a member.
func (o *Object) Remove(child *Object) bool {
	if !slices.Contains(o.children, child) {
		return false
	}
	full := child.CalcTransformMatrix(false)
	child.detach()
	child.ApplyTransform(full)
	return true
}

// detach removes o from its parent group or canvas without touching its
// properties.
func (o *Object) detach() {
	if p := o.parent; p != nil {
		p.children = lo.Without(p.children, o)
		o.parent = nil
	}
	if c := o.canvas; c != nil {
		c.objects = lo.Without(c.objects, o)
		o.canvas = nil
	}
}

// ChildrenBoundingRect returns the axis-aligned rect around the members'
// rotated boxes, in the group's own plane.
func (o *Object) ChildrenBoundingRect() geom.Rect {
	if len(o.children) == 0 {
		return geom.Rect{}
	}
	points := lo.FlatMap(o.children, func(c *Object, _ int) []geom.Point {
		return c.Coords(false).Points()
	})
	return geom.BoundingRect(points...)
}

// Walk calls fn for o and every descendant in painter's order. Returning
// false from fn skips that object's children.
func (o *Object) Walk(fn func(*Object) bool) {
	if !fn(o) {
		return
	}
	for _, c := range o.children {
		c.Walk(fn)
	}
}
