package object

import (
	"github.com/samber/lo"

	"github.com/inamate/inamate/canvas-go/internal/bbox"
	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// Canvas is the drawing surface: a width x height viewport looking at the
// scene through a pan/zoom transform.
type Canvas struct {
	Width, Height float64

	viewport      geom.Matrix
	retinaScaling float64
	objects       []*Object
}

// NewCanvas returns a canvas with the identity viewport and no retina
// scaling.
func NewCanvas(width, height float64) *Canvas {
	return &Canvas{
		Width:         width,
		Height:        height,
		viewport:      geom.Identity(),
		retinaScaling: 1,
	}
}

// ViewportTransform returns the scene-to-viewport matrix.
func (c *Canvas) ViewportTransform() geom.Matrix {
	return c.viewport
}

// SetViewportTransform installs a new scene-to-viewport matrix. A singular
// matrix is accepted but every plane change through it yields NaN.
func (c *Canvas) SetViewportTransform(m geom.Matrix) {
	if !m.IsInvertible() {
		Logger().Warn("non-invertible viewport transform", "matrix", m.ToSlice())
	}
	c.viewport = m
}

// Zoom returns the horizontal zoom factor.
func (c *Canvas) Zoom() float64 {
	return c.viewport[0]
}

// SetZoom zooms around the viewport origin.
func (c *Canvas) SetZoom(zoom float64) {
	c.ZoomToPoint(geom.Point{}, zoom)
}

// ZoomToPoint sets the zoom factor keeping the viewport point p fixed.
func (c *Canvas) ZoomToPoint(p geom.Point, zoom float64) {
	vpt := c.viewport
	scene := vpt.Invert().TransformPoint(p)
	vpt[0], vpt[3] = zoom, zoom
	after := vpt.TransformPoint(scene)
	vpt[4] += p.X - after.X
	vpt[5] += p.Y - after.Y
	c.SetViewportTransform(vpt)
}

// AbsolutePan sets the viewport translation to -p.
func (c *Canvas) AbsolutePan(p geom.Point) {
	vpt := c.viewport
	vpt[4], vpt[5] = -p.X, -p.Y
	c.SetViewportTransform(vpt)
}

// RelativePan shifts the viewport translation by d.
func (c *Canvas) RelativePan(d geom.Point) {
	c.AbsolutePan(geom.Pt(-d.X-c.viewport[4], -d.Y-c.viewport[5]))
}

// RetinaScaling returns the device pixel ratio.
func (c *Canvas) RetinaScaling() float64 {
	return c.retinaScaling
}

// SetRetinaScaling sets the device pixel ratio. Non-positive values reset
// it to 1.
func (c *Canvas) SetRetinaScaling(s float64) {
	if s <= 0 {
		s = 1
	}
	c.retinaScaling = s
}

func (c *Canvas) retinaMatrix() geom.Matrix {
	return geom.ScaleMatrix(c.retinaScaling, c.retinaScaling)
}

// BBox returns the visible area as a box in viewport space.
func (c *Canvas) BBox() bbox.CanvasBBox {
	return bbox.NewCanvasBBox(c.Width, c.Height, c.ViewportTransform, c.retinaMatrix)
}

// VisibleSceneRect returns the scene rect currently in view.
func (c *Canvas) VisibleSceneRect() geom.Rect {
	return c.BBox().SceneRect()
}

// RestorePointerVpt maps a viewport point back into the scene.
func (c *Canvas) RestorePointerVpt(p geom.Point) geom.Point {
	return c.viewport.Invert().TransformPoint(p)
}

// Add appends objects on top of the stack, detaching them from any previous
// owner.
func (c *Canvas) Add(objs ...*Object) {
	for _, o := range objs {
		o.detach()
		o.canvas = c
		c.objects = append(c.objects, o)
	}
}

// Remove takes o off the canvas. It reports whether o was there.
func (c *Canvas) Remove(o *Object) bool {
	if o.canvas != c {
		return false
	}
	o.detach()
	return true
}

// Objects returns the top-level objects in painter's order.
func (c *Canvas) Objects() []*Object {
	return c.objects
}

// FindTarget returns the frontmost visible object under the viewport point
// p, or nil. Group members are tested instead of their group.
func (c *Canvas) FindTarget(p geom.Point) *Object {
	return findTarget(c.objects, p)
}

func findTarget(objs []*Object, p geom.Point) *Object {
	for i := len(objs) - 1; i >= 0; i-- {
		o := objs[i]
		if !o.Visible {
			continue
		}
		if o.IsGroup() {
			if hit := findTarget(o.children, p); hit != nil {
				return hit
			}
			continue
		}
		if o.ContainsViewportPoint(p) {
			return o
		}
	}
	return nil
}

// ObjectsOnScreen returns the visible top-level objects that overlap the
// viewport, in painter's order.
func (c *Canvas) ObjectsOnScreen() []*Object {
	return lo.Filter(c.objects, func(o *Object, _ int) bool {
		return o.Visible && o.IsOnScreen()
	})
}
