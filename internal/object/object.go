// Package object is the geometry facade of canvas objects: placement,
// cached matrices, bounding boxes, hit-testing and transform mutators, plus
// the groups and the canvas that own objects.
//
// Everything here runs on the caller's goroutine. Objects and canvases are
// not safe for concurrent use.
package object

import (
	"fmt"
	"strconv"
)

// Type names the kind of an object.
type Type string

const (
	TypeRect    Type = "rect"
	TypeEllipse Type = "ellipse"
	TypePath    Type = "path"
	TypeImage   Type = "image"
	TypeGroup   Type = "group"
)

// Origins locate a point of the object's box relative to its center, as a
// fraction of the transformed size.
const (
	OriginLeft   = -0.5
	OriginTop    = -0.5
	OriginCenter = 0.0
	OriginRight  = 0.5
	OriginBottom = 0.5
)

// ParseOrigin accepts "left", "center", "right", "top", "bottom" or a
// number.
func ParseOrigin(s string) (float64, error) {
	switch s {
	case "left", "top":
		return OriginLeft, nil
	case "center", "":
		return OriginCenter, nil
	case "right", "bottom":
		return OriginRight, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse origin %q: %w", s, err)
	}
	return v, nil
}

// Object is a placed, sized element of the scene.
//
// Left and Top place the point selected by OriginX/OriginY in the parent
// plane: the canvas scene for top-level objects, the group's center-based
// plane for group members.
type Object struct {
	ID   string
	Type Type

	Left, Top     float64
	Width, Height float64

	ScaleX, ScaleY float64
	SkewX, SkewY   float64
	// Angle is in degrees.
	Angle        float64
	FlipX, FlipY bool

	OriginX, OriginY float64

	StrokeWidth float64
	// StrokeUniform keeps the stroke width constant under the object's own
	// scale and skew.
	StrokeUniform bool

	// CenteredRotation rotates around the center instead of the origin point.
	CenteredRotation bool
	Visible          bool

	parent   *Object
	canvas   *Canvas
	children []*Object

	ownMatrix  matrixCache[ownMatrixKey]
	fullMatrix matrixCache[matrixKey]
}

// New returns a visible object of the given size at the scene origin, with
// unit scale, a stroke width of 1 and a top-left origin.
func New(id string, typ Type, width, height float64) *Object {
	return &Object{
		ID:          id,
		Type:        typ,
		Width:       width,
		Height:      height,
		ScaleX:      1,
		ScaleY:      1,
		OriginX:     OriginLeft,
		OriginY:     OriginTop,
		StrokeWidth: 1,
		Visible:     true,
	}
}

// IsGroup reports whether the object can hold children.
func (o *Object) IsGroup() bool {
	return o.Type == TypeGroup
}

// Parent returns the group holding o, or nil.
func (o *Object) Parent() *Object {
	return o.parent
}

// Canvas returns the canvas o (or its outermost group) was added to, or nil.
func (o *Object) Canvas() *Canvas {
	for cur := o; cur != nil; cur = cur.parent {
		if cur.canvas != nil {
			return cur.canvas
		}
	}
	return nil
}

// Children returns the members of a group in painter's order.
func (o *Object) Children() []*Object {
	return o.children
}

func (o *Object) String() string {
	return fmt.Sprintf("%s(%s)", o.Type, o.ID)
}
