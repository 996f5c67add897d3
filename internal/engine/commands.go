package engine

import (
	"encoding/json"

	"github.com/inamate/inamate/canvas-go/internal/geom"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these and executes them on a Canvas2D context.
type DrawCommand struct {
	Op            string        `json:"op"`                      // Operation: "viewport", "path", "image"
	ObjectID      string        `json:"objectId,omitempty"`      // For hit correlation
	Transform     []float64     `json:"transform,omitempty"`     // [a, b, c, d, e, f] affine matrix
	Path          []PathCommand `json:"path,omitempty"`          // Path data for "path" ops
	Fill          string        `json:"fill,omitempty"`          // Fill color
	Stroke        string        `json:"stroke,omitempty"`        // Stroke color
	StrokeWidth   float64       `json:"strokeWidth,omitempty"`   // Stroke width
	StrokeUniform bool          `json:"strokeUniform,omitempty"` // Stroke drawn after the object transform
	Opacity       float64       `json:"opacity,omitempty"`       // Global alpha
	ImageAssetID  string        `json:"imageAssetId,omitempty"`  // Asset ID for image lookup
	ImageWidth    float64       `json:"imageWidth,omitempty"`    // Image natural width
	ImageHeight   float64       `json:"imageHeight,omitempty"`   // Image natural height
}

// CompileDrawCommands generates a draw command buffer from a scene graph.
// The first command sets the device transform (retina scaling times the
// viewport); the rest are in painter's order (back to front) with scene
// transforms. Objects entirely off screen are skipped.
func CompileDrawCommands(sg *SceneGraph) []DrawCommand {
	if sg == nil || sg.Root == nil {
		return nil
	}

	r := sg.Canvas.RetinaScaling()
	device := geom.ScaleMatrix(r, r).Multiply(sg.Canvas.ViewportTransform())
	commands := []DrawCommand{{Op: "viewport", Transform: device.ToSlice()}}

	culled := 0
	compileNode(sg.Root, &commands, &culled)
	Logger().Debug("compiled draw commands", "commands", len(commands), "culled", culled)
	return commands
}

// compileNode recursively generates draw commands for a node and its children.
func compileNode(node *SceneNode, commands *[]DrawCommand, culled *int) {
	if node == nil || !node.Visible {
		return
	}

	if node.Renderable() {
		if node.Object.IsOnScreen() {
			*commands = append(*commands, drawCommand(node))
		} else {
			*culled++
		}
	}

	// Recurse into children
	for _, child := range node.Children {
		compileNode(child, commands, culled)
	}
}

func drawCommand(node *SceneNode) DrawCommand {
	o := node.Object
	m := o.CalcTransformMatrix(false)
	if node.Type == "image" {
		// Images are drawn from their top-left corner.
		m = m.Multiply(geom.TranslateMatrix(-o.Width/2, -o.Height/2))
		return DrawCommand{
			Op:           "image",
			ObjectID:     node.ID,
			Transform:    m.ToSlice(),
			Opacity:      node.Opacity,
			ImageAssetID: node.ImageAssetID,
			ImageWidth:   o.Width,
			ImageHeight:  o.Height,
		}
	}
	return DrawCommand{
		Op:            "path",
		ObjectID:      node.ID,
		Transform:     m.ToSlice(),
		Path:          node.Path,
		Opacity:       node.Opacity,
		Fill:          node.Fill,
		Stroke:        node.Stroke,
		StrokeWidth:   o.StrokeWidth,
		StrokeUniform: o.StrokeUniform,
	}
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		return "[]", nil
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

// HitTestResult contains information about a hit test.
type HitTestResult struct {
	ObjectID string  `json:"objectId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// HitTest returns the ID of the frontmost object under the viewport point
// (x, y), or an empty string. Group members are hit, not their group.
func HitTest(sg *SceneGraph, x, y float64) string {
	if sg == nil || sg.Root == nil {
		return ""
	}
	if o := sg.Canvas.FindTarget(geom.Pt(x, y)); o != nil {
		return o.ID
	}
	return ""
}

// GetSelectionBounds returns the combined scene bounding box of the given
// object IDs.
func GetSelectionBounds(sg *SceneGraph, objectIDs []string) geom.Rect {
	if sg == nil || len(objectIDs) == 0 {
		return geom.Rect{}
	}

	rects := make([]geom.Rect, 0, len(objectIDs))
	for _, id := range objectIDs {
		node, ok := sg.NodesById[id]
		if !ok {
			continue
		}
		if r, ok := node.bounds(); ok {
			rects = append(rects, r)
		}
	}
	result, _ := geom.UnionRects(rects...)
	return result
}

// RectToJSON serializes a Rect to JSON.
func RectToJSON(r geom.Rect) string {
	data, _ := json.Marshal(r)
	return string(data)
}
