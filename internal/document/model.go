package document

import "encoding/json"

type InDocument struct {
	Project Project               `json:"project"`
	Scenes  map[string]Scene      `json:"scenes"`
	Objects map[string]ObjectNode `json:"objects"`
	Assets  map[string]Asset      `json:"assets"`
}

type Project struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Version   int      `json:"version"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
	Scenes    []string `json:"scenes"`
	Assets    []string `json:"assets"`
}

type Scene struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
	Root       string `json:"root"`
	// Viewport is the [a, b, c, d, e, f] scene-to-viewport matrix. Empty
	// means identity.
	Viewport      []float64 `json:"viewport,omitempty"`
	RetinaScaling float64   `json:"retinaScaling,omitempty"`
}

type ObjectType string

const (
	ObjectTypeGroup        ObjectType = "Group"
	ObjectTypeShapeRect    ObjectType = "ShapeRect"
	ObjectTypeShapeEllipse ObjectType = "ShapeEllipse"
	ObjectTypeVectorPath   ObjectType = "VectorPath"
	ObjectTypeRasterImage  ObjectType = "RasterImage"
)

// Transform places an object in its parent's plane. X and Y locate the
// origin point named by OriginX/OriginY ("left", "center", "right", "top",
// "bottom" or a fraction of the size relative to the center). Groups are
// placed by their local origin. R, SkewX and SkewY are in degrees.
type Transform struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	SX      float64 `json:"sx"`
	SY      float64 `json:"sy"`
	R       float64 `json:"r"`
	SkewX   float64 `json:"skewX,omitempty"`
	SkewY   float64 `json:"skewY,omitempty"`
	FlipX   bool    `json:"flipX,omitempty"`
	FlipY   bool    `json:"flipY,omitempty"`
	OriginX string  `json:"originX,omitempty"`
	OriginY string  `json:"originY,omitempty"`
	// CenteredRotation rotates around the center instead of the origin.
	CenteredRotation bool `json:"centeredRotation,omitempty"`
}

type Style struct {
	Fill          string  `json:"fill"`
	Stroke        string  `json:"stroke"`
	StrokeWidth   float64 `json:"strokeWidth"`
	StrokeUniform bool    `json:"strokeUniform,omitempty"`
	Opacity       float64 `json:"opacity"`
}

type ObjectNode struct {
	ID        string          `json:"id"`
	Type      ObjectType      `json:"type"`
	Parent    *string         `json:"parent"`
	Children  []string        `json:"children"`
	Transform Transform       `json:"transform"`
	Style     Style           `json:"style"`
	Visible   bool            `json:"visible"`
	Locked    bool            `json:"locked"`
	Data      json.RawMessage `json:"data"`
}

type Asset struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Name string          `json:"name"`
	URL  string          `json:"url"`
	Meta json.RawMessage `json:"meta"`
}

// IdentityTransform is the placement of a new group: at the parent origin,
// unscaled and unrotated.
func IdentityTransform() Transform {
	return Transform{SX: 1, SY: 1}
}

// NewEmptyDocument creates an empty document for a new project
func NewEmptyDocument(projectID, projectName, sceneID, rootID string) *InDocument {
	return &InDocument{
		Project: Project{
			ID:        projectID,
			Name:      projectName,
			Version:   1,
			CreatedAt: "", // Will be set by caller
			UpdatedAt: "",
			Scenes:    []string{sceneID},
			Assets:    []string{},
		},
		Scenes: map[string]Scene{
			sceneID: {
				ID:         sceneID,
				Name:       "Scene 1",
				Width:      1280,
				Height:     720,
				Background: "#1a1a2e",
				Root:       rootID,
			},
		},
		Objects: map[string]ObjectNode{
			rootID: {
				ID:        rootID,
				Type:      ObjectTypeGroup,
				Parent:    nil,
				Children:  []string{},
				Transform: IdentityTransform(),
				Style: Style{
					Fill: "", Stroke: "", StrokeWidth: 0, Opacity: 1,
				},
				Visible: true,
				Locked:  false,
				Data:    json.RawMessage(`{}`),
			},
		},
		Assets: map[string]Asset{},
	}
}

// AddObject inserts node as the last child of parentID. It reports false
// when the parent does not exist.
func (d *InDocument) AddObject(parentID string, node ObjectNode) bool {
	parent, ok := d.Objects[parentID]
	if !ok {
		return false
	}
	node.Parent = &parentID
	if node.Children == nil {
		node.Children = []string{}
	}
	parent.Children = append(parent.Children, node.ID)
	d.Objects[parentID] = parent
	d.Objects[node.ID] = node
	return true
}
