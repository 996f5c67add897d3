package engine

import (
	"encoding/json"
	"fmt"

	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/geom"
	"github.com/inamate/inamate/canvas-go/internal/object"
)

// BuildSceneGraph builds the scene graph of sceneID on a width x height
// canvas. A non-positive size uses the scene's own size.
func BuildSceneGraph(doc *document.InDocument, sceneID string, width, height float64) (*SceneGraph, error) {
	scene, ok := doc.Scenes[sceneID]
	if !ok {
		return nil, fmt.Errorf("scene %q: %w", sceneID, ErrSceneNotFound)
	}
	if width <= 0 || height <= 0 {
		width, height = float64(scene.Width), float64(scene.Height)
	}

	sg := NewSceneGraph(object.NewCanvas(width, height))
	if len(scene.Viewport) > 0 {
		vpt, ok := geom.MatrixFromSlice(scene.Viewport)
		if !ok {
			return nil, fmt.Errorf("scene %q: %w", sceneID, ErrInvalidViewport)
		}
		sg.Canvas.SetViewportTransform(vpt)
	}
	sg.Canvas.SetRetinaScaling(scene.RetinaScaling)

	rootObj, ok := doc.Objects[scene.Root]
	if !ok {
		return sg, nil
	}

	root, err := buildNode(doc, &rootObj, nil, 1.0, sg)
	if err != nil {
		return nil, err
	}
	if root != nil {
		sg.Root = root
		sg.Canvas.Add(root.Object)
	}
	return sg, nil
}

// buildNode recursively builds a SceneNode from a document ObjectNode.
func buildNode(
	doc *document.InDocument,
	obj *document.ObjectNode,
	parent *SceneNode,
	parentOpacity float64,
	sg *SceneGraph,
) (*SceneNode, error) {
	if !obj.Visible {
		return nil, nil
	}

	node := &SceneNode{
		ID:      obj.ID,
		Type:    mapObjectType(obj.Type),
		Opacity: parentOpacity * obj.Style.Opacity,
		Visible: true,
		Parent:  parent,
		Fill:    obj.Style.Fill,
		Stroke:  obj.Style.Stroke,
	}

	// Path data and the untransformed size, by object type
	var size geom.Point
	switch obj.Type {
	case document.ObjectTypeShapeRect:
		node.Path, size = generateRectPath(obj.Data)

	case document.ObjectTypeShapeEllipse:
		node.Path, size = generateEllipsePath(obj.Data)

	case document.ObjectTypeVectorPath:
		node.Path, size = extractVectorPath(obj.Data)

	case document.ObjectTypeRasterImage:
		var imgData struct {
			AssetID string  `json:"assetId"`
			Width   float64 `json:"width"`
			Height  float64 `json:"height"`
		}
		if err := json.Unmarshal(obj.Data, &imgData); err == nil {
			node.ImageAssetID = imgData.AssetID
			size = geom.Pt(imgData.Width, imgData.Height)
		}
	}

	o := object.New(obj.ID, objectType(obj.Type), size.X, size.Y)
	if err := placeObject(o, obj); err != nil {
		return nil, fmt.Errorf("object %q: %w", obj.ID, err)
	}
	node.Object = o

	// Register node in the lookup map
	sg.NodesById[obj.ID] = node

	// Build children
	for _, childID := range obj.Children {
		childObj, ok := doc.Objects[childID]
		if !ok {
			continue
		}

		childNode, err := buildNode(doc, &childObj, node, node.Opacity, sg)
		if err != nil {
			return nil, err
		}
		if childNode != nil {
			o.Add(childNode.Object)
			node.Children = append(node.Children, childNode)
		}
	}

	return node, nil
}

// placeObject copies the document transform and stroke onto o. Groups are
// size-less and placed by their local origin, which is also their center.
func placeObject(o *object.Object, obj *document.ObjectNode) error {
	t, s := obj.Transform, obj.Style
	o.Left, o.Top = t.X, t.Y
	o.ScaleX, o.ScaleY = clampScale(t.SX), clampScale(t.SY)
	o.Angle = t.R
	o.SkewX, o.SkewY = t.SkewX, t.SkewY
	o.FlipX, o.FlipY = t.FlipX, t.FlipY
	o.CenteredRotation = t.CenteredRotation

	// An unpainted stroke takes no room.
	o.StrokeWidth = 0
	if s.Stroke != "" {
		o.StrokeWidth = s.StrokeWidth
	}
	o.StrokeUniform = s.StrokeUniform

	if o.IsGroup() {
		o.OriginX, o.OriginY = object.OriginCenter, object.OriginCenter
		return nil
	}

	var err error
	if o.OriginX, err = parseOrigin(t.OriginX); err != nil {
		return err
	}
	if o.OriginY, err = parseOrigin(t.OriginY); err != nil {
		return err
	}
	return nil
}

// parseOrigin defaults an empty origin to the top-left corner.
func parseOrigin(s string) (float64, error) {
	if s == "" {
		return object.OriginLeft, nil
	}
	return object.ParseOrigin(s)
}

// writeTransform copies o's placement back into the document transform.
func writeTransform(t *document.Transform, o *object.Object) {
	t.X, t.Y = o.Left, o.Top
	t.SX, t.SY = o.ScaleX, o.ScaleY
	t.R = o.Angle
	t.SkewX, t.SkewY = o.SkewX, o.SkewY
	t.FlipX, t.FlipY = o.FlipX, o.FlipY
}

// mapObjectType converts document ObjectType to scene graph type string.
func mapObjectType(objType document.ObjectType) string {
	switch objType {
	case document.ObjectTypeGroup:
		return "group"
	case document.ObjectTypeShapeRect, document.ObjectTypeShapeEllipse, document.ObjectTypeVectorPath:
		return "shape"
	case document.ObjectTypeRasterImage:
		return "image"
	default:
		return "unknown"
	}
}

func objectType(objType document.ObjectType) object.Type {
	switch objType {
	case document.ObjectTypeGroup:
		return object.TypeGroup
	case document.ObjectTypeShapeEllipse:
		return object.TypeEllipse
	case document.ObjectTypeVectorPath:
		return object.TypePath
	case document.ObjectTypeRasterImage:
		return object.TypeImage
	default:
		return object.TypeRect
	}
}

// generateRectPath generates path commands for a rectangle centered on the
// origin.
func generateRectPath(data json.RawMessage) ([]PathCommand, geom.Point) {
	var rectData struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal(data, &rectData); err != nil {
		return nil, geom.Point{}
	}

	w, h := rectData.Width/2, rectData.Height/2
	return []PathCommand{
		{"M", -w, -h},
		{"L", w, -h},
		{"L", w, h},
		{"L", -w, h},
		{"Z"},
	}, geom.Pt(rectData.Width, rectData.Height)
}

// generateEllipsePath generates path commands for an ellipse using bezier curves.
func generateEllipsePath(data json.RawMessage) ([]PathCommand, geom.Point) {
	var ellipseData struct {
		RX float64 `json:"rx"`
		RY float64 `json:"ry"`
	}
	if err := json.Unmarshal(data, &ellipseData); err != nil {
		return nil, geom.Point{}
	}

	rx, ry := ellipseData.RX, ellipseData.RY

	// Magic number for bezier approximation of a circle/ellipse
	// k = 4 * (sqrt(2) - 1) / 3 ≈ 0.5522847498
	k := 0.5522847498
	kx, ky := rx*k, ry*k

	// Four bezier curves to approximate an ellipse
	return []PathCommand{
		{"M", rx, 0.0},
		{"C", rx, ky, kx, ry, 0.0, ry},
		{"C", -kx, ry, -rx, ky, -rx, 0.0},
		{"C", -rx, -ky, -kx, -ry, 0.0, -ry},
		{"C", kx, -ry, rx, -ky, rx, 0.0},
		{"Z"},
	}, geom.Pt(2*rx, 2*ry)
}

// extractVectorPath extracts path commands from a VectorPath's data and
// recenters them on their bounds.
func extractVectorPath(data json.RawMessage) ([]PathCommand, geom.Point) {
	var pathData struct {
		Commands [][]interface{} `json:"commands"`
	}
	if err := json.Unmarshal(data, &pathData); err != nil {
		return nil, geom.Point{}
	}

	result := make([]PathCommand, len(pathData.Commands))
	for i, cmd := range pathData.Commands {
		result[i] = PathCommand(cmd)
	}
	bounds := computePathBounds(result)
	return offsetPath(result, bounds.Center().Neg()), geom.Pt(bounds.Width, bounds.Height)
}

// pathPoints returns the points and control points of a path.
func pathPoints(path []PathCommand) []geom.Point {
	var points []geom.Point
	for _, cmd := range path {
		if len(cmd) == 0 {
			continue
		}

		op, ok := cmd[0].(string)
		if !ok {
			continue
		}

		var n int
		switch op {
		case "M", "L":
			n = 1
		case "Q":
			// Quadratic bezier
			n = 2
		case "C":
			// Cubic bezier: all control points and the endpoint
			n = 3
		default:
			// "Z" closes the path without new points
			continue
		}
		if len(cmd) < 1+2*n {
			continue
		}
		for i := range n {
			points = append(points, geom.Pt(toFloat64(cmd[1+2*i]), toFloat64(cmd[2+2*i])))
		}
	}
	return points
}

// computePathBounds computes the axis-aligned bounding box of a path in
// its own coordinates.
func computePathBounds(path []PathCommand) geom.Rect {
	return geom.BoundingRect(pathPoints(path)...)
}

// offsetPath returns a copy of path moved by d.
func offsetPath(path []PathCommand, d geom.Point) []PathCommand {
	result := make([]PathCommand, len(path))
	for i, cmd := range path {
		moved := make(PathCommand, len(cmd))
		copy(moved, cmd)
		if len(cmd) > 0 && cmd[0] != "Z" {
			for j := 1; j+1 < len(moved); j += 2 {
				moved[j] = toFloat64(cmd[j]) + d.X
				moved[j+1] = toFloat64(cmd[j+1]) + d.Y
			}
		}
		result[i] = moved
	}
	return result
}

// toFloat64 converts an interface{} to float64.
func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
