package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/inamate/inamate/canvas-go/internal/bbox"
	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/geom"
)

var (
	ErrNoDocument      = errors.New("no document loaded")
	ErrSceneNotFound   = errors.New("scene not found")
	ErrObjectNotFound  = errors.New("object not found")
	ErrInvalidViewport = errors.New("invalid viewport")
	ErrInvalidScale    = errors.New("scale must be finite and non-zero")
	ErrInvalidValue    = errors.New("value must be finite")
)

// MinScale is the smallest scale magnitude an object keeps. Smaller factors
// are raised to it so the own matrix stays invertible.
const MinScale = 1e-4

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// clampScale raises |s| to MinScale, keeping the sign.
func clampScale(s float64) float64 {
	if math.Abs(s) >= MinScale {
		return s
	}
	if s < 0 {
		return -MinScale
	}
	return MinScale
}

// Engine owns a document and the retained scene built from it. Viewport
// and transform commands mutate the scene and are written back to the
// document, so GetDocument always reflects what is rendered.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	// Document state
	doc     *document.InDocument
	sceneID string

	// Retained scene graph
	sceneGraph *SceneGraph

	// Canvas size; zero means the scene's own size.
	width, height float64

	// Selection state (backend owns this)
	selection []string

	// Dirty flag - scene graph needs rebuild
	dirty bool
}

// NewEngine creates a new engine instance.
func NewEngine() *Engine {
	return &Engine{dirty: true}
}

// --- Commands (frontend → backend) ---

// LoadDocument loads a document from JSON and resets the selection.
func (e *Engine) LoadDocument(jsonData string) error {
	if err := e.UpdateDocument(jsonData); err != nil {
		return err
	}
	e.selection = nil
	return nil
}

// UpdateDocument replaces the document while keeping the selection and the
// canvas size.
func (e *Engine) UpdateDocument(jsonData string) error {
	var doc document.InDocument
	if err := json.Unmarshal([]byte(jsonData), &doc); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	e.SetDocument(&doc)
	return nil
}

// LoadSampleDocument loads the built-in sample document.
func (e *Engine) LoadSampleDocument(projectID string) {
	e.SetDocument(document.NewSampleDocument(projectID))
	e.selection = nil
}

// SetDocument makes doc the engine's document, showing its first scene.
// The engine mutates doc in place from then on.
func (e *Engine) SetDocument(doc *document.InDocument) {
	e.doc = doc
	e.sceneID = ""
	if len(doc.Project.Scenes) > 0 {
		e.sceneID = doc.Project.Scenes[0]
	}
	e.dirty = true
}

// SetScene switches to another scene of the document.
func (e *Engine) SetScene(sceneID string) error {
	if e.doc == nil {
		return ErrNoDocument
	}
	if _, ok := e.doc.Scenes[sceneID]; !ok {
		return fmt.Errorf("set scene %q: %w", sceneID, ErrSceneNotFound)
	}
	e.sceneID = sceneID
	e.dirty = true
	return nil
}

// SetCanvasSize sets the size of the drawing surface in viewport units.
func (e *Engine) SetCanvasSize(width, height float64) {
	e.width, e.height = width, height
	e.dirty = true
}

// SetSelection sets the selected object IDs.
func (e *Engine) SetSelection(ids []string) {
	e.selection = ids
}

// scene returns the scene graph, rebuilding it when dirty.
func (e *Engine) scene() (*SceneGraph, error) {
	if e.doc == nil {
		return nil, ErrNoDocument
	}
	if e.dirty || e.sceneGraph == nil {
		sg, err := BuildSceneGraph(e.doc, e.sceneID, e.width, e.height)
		if err != nil {
			return nil, fmt.Errorf("build scene: %w", err)
		}
		e.sceneGraph = sg
		e.dirty = false
		Logger().Debug("scene built", "scene", e.sceneID, "objects", len(sg.NodesById))
	}
	return e.sceneGraph, nil
}

func (e *Engine) node(id string) (*SceneNode, error) {
	sg, err := e.scene()
	if err != nil {
		return nil, err
	}
	node, ok := sg.NodesById[id]
	if !ok {
		return nil, fmt.Errorf("object %q: %w", id, ErrObjectNotFound)
	}
	return node, nil
}

// --- Viewport ---

// SetViewport installs the [a, b, c, d, e, f] scene-to-viewport matrix.
func (e *Engine) SetViewport(m []float64) error {
	vpt, ok := geom.MatrixFromSlice(m)
	if !ok || !finite(m...) {
		return ErrInvalidViewport
	}
	sg, err := e.scene()
	if err != nil {
		return err
	}
	sg.Canvas.SetViewportTransform(vpt)
	e.commitViewport()
	return nil
}

// ZoomToPoint zooms keeping the viewport point (x, y) fixed.
func (e *Engine) ZoomToPoint(x, y, zoom float64) error {
	if !finite(x, y, zoom) || zoom <= 0 {
		return fmt.Errorf("zoom %v at (%v, %v): %w", zoom, x, y, ErrInvalidViewport)
	}
	sg, err := e.scene()
	if err != nil {
		return err
	}
	sg.Canvas.ZoomToPoint(geom.Pt(x, y), zoom)
	e.commitViewport()
	return nil
}

// Pan shifts the viewport by (dx, dy) viewport units.
func (e *Engine) Pan(dx, dy float64) error {
	if !finite(dx, dy) {
		return fmt.Errorf("pan (%v, %v): %w", dx, dy, ErrInvalidViewport)
	}
	sg, err := e.scene()
	if err != nil {
		return err
	}
	sg.Canvas.RelativePan(geom.Pt(dx, dy))
	e.commitViewport()
	return nil
}

// SetRetinaScaling sets the device pixel ratio.
func (e *Engine) SetRetinaScaling(s float64) error {
	if !finite(s) {
		return fmt.Errorf("retina scaling %v: %w", s, ErrInvalidValue)
	}
	sg, err := e.scene()
	if err != nil {
		return err
	}
	sg.Canvas.SetRetinaScaling(s)
	e.commitViewport()
	return nil
}

// Viewport returns the current scene-to-viewport matrix.
func (e *Engine) Viewport() ([]float64, error) {
	sg, err := e.scene()
	if err != nil {
		return nil, err
	}
	return sg.Canvas.ViewportTransform().ToSlice(), nil
}

func (e *Engine) commitViewport() {
	scene := e.doc.Scenes[e.sceneID]
	scene.Viewport = e.sceneGraph.Canvas.ViewportTransform().ToSlice()
	scene.RetinaScaling = e.sceneGraph.Canvas.RetinaScaling()
	e.doc.Scenes[e.sceneID] = scene
}

// --- Object transforms ---

// MoveObject places the object's origin point at the scene point (x, y).
func (e *Engine) MoveObject(id string, x, y float64) error {
	if !finite(x, y) {
		return fmt.Errorf("move to (%v, %v): %w", x, y, ErrInvalidValue)
	}
	return e.mutate(id, func(node *SceneNode) {
		node.Object.SetXY(geom.Pt(x, y))
	})
}

// RotateObject turns the object so its on-screen angle is angle degrees.
func (e *Engine) RotateObject(id string, angle float64) error {
	if !finite(angle) {
		return fmt.Errorf("rotate to %v: %w", angle, ErrInvalidValue)
	}
	return e.mutate(id, func(node *SceneNode) {
		node.Object.Rotate(angle)
	})
}

// ScaleObject sets the object's own scale factors. Zero is rejected and
// magnitudes below MinScale are raised to it.
func (e *Engine) ScaleObject(id string, sx, sy float64) error {
	if !finite(sx, sy) || sx == 0 || sy == 0 {
		return fmt.Errorf("scale (%v, %v): %w", sx, sy, ErrInvalidScale)
	}
	return e.mutate(id, func(node *SceneNode) {
		node.Object.ScaleX, node.Object.ScaleY = sx, sy
	})
}

// ScaleObjectToWidth scales uniformly so the rotated box is width wide, in
// scene units when absolute is set and viewport units otherwise.
func (e *Engine) ScaleObjectToWidth(id string, width float64, absolute bool) error {
	if !finite(width) || width <= 0 {
		return fmt.Errorf("width %v: %w", width, ErrInvalidScale)
	}
	return e.mutate(id, func(node *SceneNode) {
		node.Object.ScaleToWidth(width, absolute)
	})
}

// ScaleObjectToHeight is ScaleObjectToWidth for the height.
func (e *Engine) ScaleObjectToHeight(id string, height float64, absolute bool) error {
	if !finite(height) || height <= 0 {
		return fmt.Errorf("height %v: %w", height, ErrInvalidScale)
	}
	return e.mutate(id, func(node *SceneNode) {
		node.Object.ScaleToHeight(height, absolute)
	})
}

// mutate applies fn to the object and writes its placement back to the
// document. The scene graph stays valid. A placement that is not finite is
// not written; the scene is rebuilt from the unchanged document instead.
func (e *Engine) mutate(id string, fn func(*SceneNode)) error {
	node, err := e.node(id)
	if err != nil {
		return err
	}
	fn(node)
	o := node.Object
	o.ScaleX, o.ScaleY = clampScale(o.ScaleX), clampScale(o.ScaleY)

	obj := e.doc.Objects[id]
	t := obj.Transform
	writeTransform(&t, o)
	if !finite(t.X, t.Y, t.SX, t.SY, t.R, t.SkewX, t.SkewY) {
		e.dirty = true
		return fmt.Errorf("object %q: %w", id, ErrInvalidValue)
	}
	obj.Transform = t
	e.doc.Objects[id] = obj
	return nil
}

// --- Queries (frontend ← backend) ---

// Render returns the draw commands of the current scene as JSON.
func (e *Engine) Render() (string, error) {
	sg, err := e.scene()
	if err != nil {
		return "[]", err
	}
	return DrawCommandsToJSON(CompileDrawCommands(sg))
}

// HitTest returns the object ID of the frontmost object under the viewport
// point (x, y), or an empty string.
func (e *Engine) HitTest(x, y float64) (string, error) {
	sg, err := e.scene()
	if err != nil {
		return "", err
	}
	return HitTest(sg, x, y), nil
}

// SelectionBounds returns the scene bounding box of the current selection.
func (e *Engine) SelectionBounds() (geom.Rect, error) {
	if len(e.selection) == 0 {
		return geom.Rect{}, nil
	}
	sg, err := e.scene()
	if err != nil {
		return geom.Rect{}, err
	}
	return GetSelectionBounds(sg, e.selection), nil
}

// GetSelectionBounds returns the bounding box of the current selection as JSON.
func (e *Engine) GetSelectionBounds() string {
	bounds, err := e.SelectionBounds()
	if err != nil {
		return RectToJSON(geom.Rect{})
	}
	return RectToJSON(bounds)
}

// ObjectCoords returns the corners of the object's box of the given kind
// in viewport coordinates.
func (e *Engine) ObjectCoords(id string, kind bbox.Kind) (bbox.Coords, error) {
	node, err := e.node(id)
	if err != nil {
		return bbox.Coords{}, err
	}
	return node.Object.BBox(kind).Coords(), nil
}

// ObjectsOnScreen returns the IDs of the drawable objects overlapping the
// viewport, in painter's order.
func (e *Engine) ObjectsOnScreen() ([]string, error) {
	sg, err := e.scene()
	if err != nil {
		return nil, err
	}
	var ids []string
	var walk func(*SceneNode)
	walk = func(n *SceneNode) {
		if n.Renderable() {
			ids = append(ids, n.ID)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if sg.Root != nil {
		walk(sg.Root)
	}
	return lo.Filter(ids, func(id string, _ int) bool {
		return sg.NodesById[id].Object.IsOnScreen()
	}), nil
}

// GetScene returns the current scene metadata as JSON.
func (e *Engine) GetScene() string {
	if e.doc == nil || e.sceneID == "" {
		return "{}"
	}

	scene, ok := e.doc.Scenes[e.sceneID]
	if !ok {
		return "{}"
	}

	data, _ := json.Marshal(scene)
	return string(data)
}

// GetDocument returns the full document as JSON (for debugging/sync).
func (e *Engine) GetDocument() (string, error) {
	if e.doc == nil {
		return "{}", nil
	}
	data, err := json.Marshal(e.doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(data), nil
}

// Document returns the engine's document. Callers must not modify it.
func (e *Engine) Document() *document.InDocument {
	return e.doc
}

// GetSelection returns the current selection as JSON.
func (e *Engine) GetSelection() string {
	data, _ := json.Marshal(e.selection)
	return string(data)
}
