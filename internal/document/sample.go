package document

import (
	"encoding/json"
	"time"

	"github.com/inamate/inamate/canvas-go/internal/typeid"
)

func NewSampleDocument(projectID string) *InDocument {
	now := time.Now().UTC().Format(time.RFC3339)

	sceneID := typeid.NewSceneID()
	rootID := typeid.NewObjectID()
	rectID := typeid.NewObjectID()
	ellipseID := typeid.NewObjectID()
	triangleID := typeid.NewObjectID()
	frameID := typeid.NewObjectID()

	// Badge group
	badgeID := typeid.NewObjectID()
	badgeRectID := typeid.NewObjectID()
	badgeEllipseID := typeid.NewObjectID()

	rootIDPtr := &rootID
	badgeIDPtr := &badgeID

	return &InDocument{
		Project: Project{
			ID:        projectID,
			Name:      "Untitled",
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
			Scenes:    []string{sceneID},
			Assets:    []string{},
		},
		Scenes: map[string]Scene{
			sceneID: {
				ID:            sceneID,
				Name:          "Scene 1",
				Width:         1280,
				Height:        720,
				Background:    "#1a1a2e",
				Root:          rootID,
				Viewport:      []float64{1, 0, 0, 1, 0, 0},
				RetinaScaling: 1,
			},
		},
		Objects: map[string]ObjectNode{
			rootID: {
				ID:        rootID,
				Type:      ObjectTypeGroup,
				Parent:    nil,
				Children:  []string{rectID, ellipseID, triangleID, frameID, badgeID},
				Transform: IdentityTransform(),
				Style: Style{
					Fill: "", Stroke: "", StrokeWidth: 0, Opacity: 1,
				},
				Visible: true,
				Locked:  false,
				Data:    json.RawMessage(`{}`),
			},
			rectID: {
				ID:       rectID,
				Type:     ObjectTypeShapeRect,
				Parent:   rootIDPtr,
				Children: []string{},
				Transform: Transform{
					X: 200, Y: 200, SX: 1, SY: 1, R: 15,
				},
				Style: Style{
					Fill: "#e94560", Stroke: "#000000", StrokeWidth: 2, Opacity: 1,
				},
				Visible: true,
				Locked:  false,
				Data:    json.RawMessage(`{"width": 200, "height": 150}`),
			},
			ellipseID: {
				ID:       ellipseID,
				Type:     ObjectTypeShapeEllipse,
				Parent:   rootIDPtr,
				Children: []string{},
				Transform: Transform{
					X: 640, Y: 360, SX: 1, SY: 1, R: 0, OriginX: "center", OriginY: "center",
				},
				Style: Style{
					Fill: "#0f3460", Stroke: "#16213e", StrokeWidth: 2, Opacity: 1,
				},
				Visible: true,
				Locked:  false,
				Data:    json.RawMessage(`{"rx": 120, "ry": 80}`),
			},
			triangleID: {
				ID:       triangleID,
				Type:     ObjectTypeVectorPath,
				Parent:   rootIDPtr,
				Children: []string{},
				Transform: Transform{
					X: 900, Y: 200, SX: 1, SY: 1, R: 0, SkewX: 20,
				},
				Style: Style{
					Fill: "#53d769", Stroke: "#2d6a4f", StrokeWidth: 2, Opacity: 1,
				},
				Visible: true,
				Locked:  false,
				Data:    json.RawMessage(`{"commands": [["M", 0, 150], ["L", 100, 0], ["L", 200, 150], ["Z"]]}`),
			},
			frameID: {
				ID:       frameID,
				Type:     ObjectTypeShapeRect,
				Parent:   rootIDPtr,
				Children: []string{},
				Transform: Transform{
					X: 100, Y: 480, SX: 3, SY: 1.5,
				},
				Style: Style{
					Fill: "", Stroke: "#e0e0e0", StrokeWidth: 4, StrokeUniform: true, Opacity: 1,
				},
				Visible: true,
				Locked:  false,
				Data:    json.RawMessage(`{"width": 80, "height": 60}`),
			},
			badgeID: {
				ID:       badgeID,
				Type:     ObjectTypeGroup,
				Parent:   rootIDPtr,
				Children: []string{badgeRectID, badgeEllipseID},
				Transform: Transform{
					X: 500, Y: 450, SX: 1, SY: 1, R: 30,
				},
				Style: Style{
					Fill: "", Stroke: "", StrokeWidth: 0, Opacity: 1,
				},
				Visible: true,
				Locked:  false,
				Data:    json.RawMessage(`{}`),
			},
			badgeRectID: {
				ID:       badgeRectID,
				Type:     ObjectTypeShapeRect,
				Parent:   badgeIDPtr,
				Children: []string{},
				Transform: Transform{
					X: -30, Y: -50, SX: 1, SY: 1, R: 0,
				},
				Style: Style{
					Fill: "#f5a623", Stroke: "#c78400", StrokeWidth: 2, Opacity: 1,
				},
				Visible: true,
				Locked:  false,
				Data:    json.RawMessage(`{"width": 60, "height": 100}`),
			},
			badgeEllipseID: {
				ID:       badgeEllipseID,
				Type:     ObjectTypeShapeEllipse,
				Parent:   badgeIDPtr,
				Children: []string{},
				Transform: Transform{
					X: 0, Y: -70, SX: 1, SY: 1, R: 0, OriginX: "center", OriginY: "center",
				},
				Style: Style{
					Fill: "#bd10e0", Stroke: "#8b0ba8", StrokeWidth: 2, Opacity: 1,
				},
				Visible: true,
				Locked:  false,
				Data:    json.RawMessage(`{"rx": 20, "ry": 20}`),
			},
		},
		Assets: map[string]Asset{},
	}
}
