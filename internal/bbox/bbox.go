package bbox

import (
	"fmt"
	"math"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// Target is the geometry an object exposes to build its boxes.
type Target interface {
	Planes() Planes
	// Dimensions is the untransformed size, non-uniform stroke included.
	Dimensions() geom.Point
	// StrokePadding is added after the object's own transform, in canvas
	// units. It is non-zero only for uniform strokes.
	StrokePadding() float64
}

// Kind selects one of the named box constructions.
type Kind int

const (
	// KindRotated is aligned to the object's rotation and tight around its
	// corners. It is the box used for hit-testing and resizing.
	KindRotated Kind = iota
	// KindCanvas is the axis-aligned box around the corners.
	KindCanvas
	// KindTransformed follows the raw top and left edges, skew included.
	KindTransformed
	// KindLegacy uses the own angle and the skewed extent, as consumers
	// unaware of skew expect.
	KindLegacy
)

func (k Kind) String() string {
	switch k {
	case KindRotated:
		return "rotated"
	case KindCanvas:
		return "canvas"
	case KindTransformed:
		return "transformed"
	case KindLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses the String form of a Kind. An empty string is KindRotated.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "rotated":
		return KindRotated, nil
	case "canvas":
		return KindCanvas, nil
	case "transformed":
		return KindTransformed, nil
	case "legacy":
		return KindLegacy, nil
	}
	return 0, fmt.Errorf("unknown bbox kind %q", s)
}

// BBox is an object's box in viewport space together with the object's
// planes, so it can be sent back into any of them.
type BBox struct {
	ViewportBBox
	planes Planes
}

// Of builds the box of kind k for t.
func Of(t Target, k Kind) BBox {
	switch k {
	case KindCanvas:
		return Canvas(t)
	case KindTransformed:
		return Transformed(t)
	case KindLegacy:
		return Legacy(t)
	default:
		return Rotated(t)
	}
}

func newBBox(b PlaneBBox, planes Planes) BBox {
	return BBox{
		ViewportBBox: NewViewportBBox(b, planes.Viewport, planes.Retina),
		planes:       planes,
	}
}

// sceneFrame is t's parallelogram in canvas space, stroke padding included.
func sceneFrame(planes Planes, local PlaneBBox, padding float64) PlaneBBox {
	frame := New(planes.Full().Multiply(local.transform))
	if padding != 0 {
		frame = frame.Inflate(padding, padding)
	}
	return frame
}

// localFrame is the box of a width x height object centered at its own origin.
func localFrame(dim geom.Point) PlaneBBox {
	return New(geom.ScaleMatrix(dim.X, dim.Y))
}

// viewportCoords are t's corners after the viewport transform.
func viewportCoords(t Target) (Coords, Planes) {
	planes := t.Planes()
	frame := sceneFrame(planes, localFrame(t.Dimensions()), t.StrokePadding())
	return frame.Coords().Transform(planes.Viewport.Resolve()), planes
}

// Transformed builds the box whose edges are t's transformed top and left
// edges.
func Transformed(t Target) BBox {
	coords, planes := viewportCoords(t)
	return newBBox(FromCoords(coords), planes)
}

// Canvas builds the axis-aligned box around t's viewport corners.
func Canvas(t Target) BBox {
	coords, planes := viewportCoords(t)
	return newBBox(FromRect(coords.BoundingRect()), planes)
}

// Rotated builds the tightest box around t's viewport corners that is
// aligned to t's rotation.
func Rotated(t Target) BBox {
	coords, planes := viewportCoords(t)
	m := geom.MultiplyChain(planes.Viewport.Resolve(), planes.Full())
	theta := math.Atan2(m[1], m[0])
	center := coords.TL.MidPointFrom(coords.BR)
	upright := coords.Map(func(p geom.Point) geom.Point { return p.Rotate(-theta, center) })
	return newBBox(FromRect(upright.BoundingRect()).Rotate(theta, center), planes)
}

// Placed is implemented by targets that know the components their own
// matrix was composed from. Decompose folds skewY into the angle, so Legacy
// reads the components directly when it can.
type Placed interface {
	Placement() geom.ComposeOptions
}

// Legacy builds the box of skew-unaware consumers: the own angle, with a
// size that is the axis-aligned extent of the scaled and skewed object. It
// matches Rotated unless t is skewed.
func Legacy(t Target) BBox {
	planes := t.Planes()
	self := planes.Self.Resolve()
	var o geom.ComposeOptions
	if p, ok := t.(Placed); ok {
		o = p.Placement()
	} else {
		o = geom.Decompose(self).Options()
	}
	dim := t.Dimensions()
	size := geom.SizeAfterTransform(dim.X, dim.Y, geom.DimensionsMatrix(geom.ComposeOptions{
		ScaleX: math.Abs(o.ScaleX),
		ScaleY: math.Abs(o.ScaleY),
		SkewX:  o.SkewX,
		SkewY:  o.SkewY,
	}))
	pad := t.StrokePadding()
	m := geom.MultiplyChain(
		planes.Viewport.Resolve(),
		planes.Parent.Resolve(),
		geom.TranslateMatrix(self[4], self[5]),
		geom.RotateMatrix(o.Angle, geom.Point{}),
		geom.ScaleMatrix(size.X+pad, size.Y+pad),
	)
	return newBBox(New(m), planes)
}

// Planes returns the planes the box was built against.
func (b BBox) Planes() Planes {
	return b.planes
}

// SendToParent re-expresses the box in the owner's parent plane.
func (b BBox) SendToParent() PlaneBBox {
	return b.SendToPlane(b.planes.Parent)
}

// SendToSelf re-expresses the box in the owner's own plane, ancestors
// included.
func (b BBox) SendToSelf() PlaneBBox {
	return b.SendToPlane(b.planes.FullPlane())
}
