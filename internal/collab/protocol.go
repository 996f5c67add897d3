package collab

import "encoding/json"

type Message struct {
	Type     string          `json:"type"`
	RoomID   string          `json:"roomId,omitempty"`
	ClientID string          `json:"clientId,omitempty"`
	UserID   string          `json:"userId,omitempty"`
	Seq      int64           `json:"seq,omitempty"`
	Payload  json.RawMessage `json:"payload"`
}

type PresencePayload struct {
	Cursor      *CursorPos `json:"cursor,omitempty"`
	Selection   []string   `json:"selection,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
}

type CursorPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PresenceStatePayload struct {
	Presences map[string]*PresencePayload `json:"presences"`
}

type PresenceJoinPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type PresenceLeavePayload struct {
	UserID string `json:"userId"`
}

type WelcomePayload struct {
	ClientID  string `json:"clientId"`
	UserID    string `json:"userId"`
	ServerSeq int64  `json:"serverSeq"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

const (
	TypePresenceUpdate = "presence.update"
	TypePresenceState  = "presence.state"
	TypePresenceJoin   = "presence.join"
	TypePresenceLeave  = "presence.leave"
	TypeError          = "error"

	// Connection
	TypeWelcome = "welcome"

	// Document sync
	TypeDocSync = "doc.sync"

	// Operation message types
	TypeOpSubmit    = "op.submit"
	TypeOpAck       = "op.ack"
	TypeOpNack      = "op.nack"
	TypeOpBroadcast = "op.broadcast"

	// Pointer queries
	TypePointerHit = "pointer.hit"
	TypeHitResult  = "hit.result"
)

// Operation types applied to a room's scene.
const (
	OpViewportSet         = "viewport.set"
	OpViewportZoom        = "viewport.zoom"
	OpViewportPan         = "viewport.pan"
	OpObjectMove          = "object.move"
	OpObjectRotate        = "object.rotate"
	OpObjectScale         = "object.scale"
	OpObjectScaleToWidth  = "object.scaleToWidth"
	OpObjectScaleToHeight = "object.scaleToHeight"
)

// --- Operation Types ---

// Operation represents a scene mutation
type Operation struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	ClientSeq int64  `json:"clientSeq"`
	ObjectID  string `json:"objectId,omitempty"`

	// For object.move (scene point), viewport.zoom (viewport point) and
	// viewport.pan (delta)
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// For object.rotate, in degrees
	Angle float64 `json:"angle,omitempty"`

	// For object.scale; both are required
	SX *float64 `json:"sx,omitempty"`
	SY *float64 `json:"sy,omitempty"`

	// For object.scaleToWidth / object.scaleToHeight
	Size     float64 `json:"size,omitempty"`
	Absolute bool    `json:"absolute,omitempty"`

	// For viewport.zoom
	Zoom float64 `json:"zoom,omitempty"`

	// For viewport.set
	Matrix []float64 `json:"matrix,omitempty"`
}

// OperationSubmitPayload is the payload for op.submit messages
type OperationSubmitPayload struct {
	Operation Operation `json:"operation"`
}

// OperationAckPayload is the payload for op.ack messages
type OperationAckPayload struct {
	OperationID     string `json:"operationId"`
	ServerSeq       int64  `json:"serverSeq"`
	ServerTimestamp int64  `json:"serverTimestamp"`
}

// OperationNackPayload is the payload for op.nack messages
type OperationNackPayload struct {
	OperationID string `json:"operationId"`
	Reason      string `json:"reason"`
}

// OperationBroadcastPayload is the payload for op.broadcast messages
type OperationBroadcastPayload struct {
	Operation Operation `json:"operation"`
	UserID    string    `json:"userId"`
	ServerSeq int64     `json:"serverSeq"`
}

// PointerHitPayload asks which object is under a viewport point.
type PointerHitPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
