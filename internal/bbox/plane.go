// Package bbox expresses object bounds as affine frames in named coordinate
// planes and converts them between planes.
//
// Every box is a matrix mapping the normalized origin space [-0.5, 0.5]²
// into some plane. Corners, center and rotation are derived from that
// matrix on demand.
package bbox

import "github.com/inamate/inamate/canvas-go/internal/geom"

// Plane resolves a plane matrix at query time, so a box built from it always
// sees the current state of its owner. A nil Plane is the identity.
type Plane func() geom.Matrix

// Resolve returns the plane's current matrix.
func (p Plane) Resolve() geom.Matrix {
	if p == nil {
		return geom.Identity()
	}
	return p()
}

// IdentityPlane is the plane of an object with no owner.
func IdentityPlane() geom.Matrix {
	return geom.Identity()
}

// Fixed returns a plane that always resolves to m.
func Fixed(m geom.Matrix) Plane {
	return func() geom.Matrix { return m }
}

// Planes are the four planes an object's geometry is expressed against.
type Planes struct {
	// Self is the object's own matrix without ancestors.
	Self Plane
	// Parent is the full matrix of the nearest ancestor.
	Parent Plane
	// Viewport is the canvas pan/zoom.
	Viewport Plane
	// Retina maps viewport pixels to device pixels.
	Retina Plane
}

// Full returns parent * self: the object's plane expressed in canvas space.
func (p Planes) Full() geom.Matrix {
	return geom.MultiplyChain(p.Parent.Resolve(), p.Self.Resolve())
}

// FullPlane returns Full as a lazy plane.
func (p Planes) FullPlane() Plane {
	return p.Full
}

// Freeze snapshots every plane at its current value.
func (p Planes) Freeze() Planes {
	return Planes{
		Self:     Fixed(p.Self.Resolve()),
		Parent:   Fixed(p.Parent.Resolve()),
		Viewport: Fixed(p.Viewport.Resolve()),
		Retina:   Fixed(p.Retina.Resolve()),
	}
}
