package bbox

import "github.com/inamate/inamate/canvas-go/internal/geom"

// OwnBBox keeps an object's untransformed corners and only applies its
// planes when asked. Moving or rotating the owner needs no rebuild; the
// next Coords call sees the new planes.
type OwnBBox struct {
	local   PlaneBBox
	padding float64
	planes  Planes
}

// NewOwnBBox captures t's untransformed size and its (lazy) planes.
func NewOwnBBox(t Target) OwnBBox {
	return OwnBBox{
		local:   localFrame(t.Dimensions()),
		padding: t.StrokePadding(),
		planes:  t.Planes(),
	}
}

// LocalCoords returns the corners in the object's own space.
func (o OwnBBox) LocalCoords() Coords {
	return o.local.Coords()
}

// Transform returns the current viewport-space origin transform.
func (o OwnBBox) Transform() geom.Matrix {
	return o.frame().transform
}

// Coords returns the current viewport-space corners.
func (o OwnBBox) Coords() Coords {
	return o.frame().Coords()
}

// ContainsPoint reports whether the viewport point p is inside the box.
func (o OwnBBox) ContainsPoint(p geom.Point) bool {
	return o.frame().ContainsPoint(p)
}

// Freeze resolves the planes once and returns the equivalent BBox.
func (o OwnBBox) Freeze() BBox {
	planes := o.planes.Freeze()
	return newBBox(o.frameIn(planes), planes)
}

func (o OwnBBox) frame() PlaneBBox {
	return o.frameIn(o.planes)
}

func (o OwnBBox) frameIn(planes Planes) PlaneBBox {
	scene := sceneFrame(planes, o.local, o.padding)
	return New(planes.Viewport.Resolve().Multiply(scene.transform))
}
