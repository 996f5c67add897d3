package bbox

import "github.com/inamate/inamate/canvas-go/internal/geom"

// CanvasBBox is the visible drawing surface: the rect [0, width] x
// [0, height] in viewport space.
type CanvasBBox struct {
	ViewportBBox
}

// NewCanvasBBox returns the box of a width x height canvas.
func NewCanvasBBox(width, height float64, viewport, retina Plane) CanvasBBox {
	r := geom.Rect{Width: width, Height: height}
	return CanvasBBox{ViewportBBox: NewViewportBBox(FromRect(r), viewport, retina)}
}

// SceneCoords returns the visible area's corners in scene coordinates.
func (c CanvasBBox) SceneCoords() Coords {
	return c.Coords().Transform(c.viewport.Resolve().Invert())
}

// SceneRect returns the axis-aligned scene rect that is visible.
func (c CanvasBBox) SceneRect() geom.Rect {
	return c.SceneCoords().BoundingRect()
}
