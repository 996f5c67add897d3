package engine

import (
	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/object"
)

// SceneGraph is the retained, render-ready state of one document scene.
// Geometry lives on the objects; the graph adds what is needed to paint them.
type SceneGraph struct {
	Canvas    *object.Canvas
	Root      *SceneNode
	NodesById map[string]*SceneNode
}

// SceneNode pairs a placed object with its resolved render data.
type SceneNode struct {
	ID   string
	Type string // "group", "shape", "image"

	Object *object.Object

	// Inherited/resolved properties
	Opacity float64
	Visible bool

	// Hierarchy
	Parent   *SceneNode
	Children []*SceneNode

	// Render data (resolved from document). Paths are centered on the
	// object's local origin.
	Path   []PathCommand
	Fill   string
	Stroke string

	// Image data (for RasterImage nodes)
	ImageAssetID string
}

// PathCommand represents a single path segment for rendering.
// Format matches Canvas2D: ["M", x, y], ["L", x, y], ["C", x1, y1, x2, y2, x, y], etc.
type PathCommand []interface{}

// NewSceneGraph creates an empty scene graph drawn on canvas.
func NewSceneGraph(canvas *object.Canvas) *SceneGraph {
	return &SceneGraph{
		Canvas:    canvas,
		NodesById: make(map[string]*SceneNode),
	}
}

// Bounds returns the axis-aligned scene rect around the node. A group is
// the union of its members.
func (n *SceneNode) Bounds() geom.Rect {
	r, _ := n.bounds()
	return r
}

// bounds is Bounds, reporting false for a group with no members.
func (n *SceneNode) bounds() (geom.Rect, bool) {
	if n.Type != "group" {
		return n.Object.BoundingRect(), true
	}
	rects := make([]geom.Rect, 0, len(n.Children))
	for _, c := range n.Children {
		if r, ok := c.bounds(); ok {
			rects = append(rects, r)
		}
	}
	return geom.UnionRects(rects...)
}

// Renderable reports whether the node paints anything itself.
func (n *SceneNode) Renderable() bool {
	return len(n.Path) > 0 || (n.Type == "image" && n.ImageAssetID != "")
}
