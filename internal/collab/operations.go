package collab

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/engine"
)

var (
	ErrUnknownOperation = errors.New("unknown operation type")
	ErrMissingField     = errors.New("missing operation field")
)

// RoomState holds the authoritative scene of a room. All access to the
// engine goes through the mutex.
type RoomState struct {
	mu        sync.Mutex
	engine    *engine.Engine
	serverSeq int64
	opLog     []Operation // Operation history
}

// NewRoomState creates a room state showing doc on a width x height canvas.
// A non-positive size uses the scene's own size.
func NewRoomState(doc *document.InDocument, width, height float64) *RoomState {
	e := engine.NewEngine()
	e.SetDocument(doc)
	e.SetCanvasSize(width, height)
	return &RoomState{
		engine: e,
		opLog:  make([]Operation, 0),
	}
}

// DocumentJSON returns a snapshot of the current document
func (rs *RoomState) DocumentJSON() (json.RawMessage, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	doc, err := rs.engine.GetDocument()
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc), nil
}

// ServerSeq returns the sequence number of the last applied operation.
func (rs *RoomState) ServerSeq() int64 {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.serverSeq
}

// ApplyOperation applies an operation to the scene and returns the server sequence
func (rs *RoomState) ApplyOperation(op Operation) (int64, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if err := rs.applyOperationLocked(op); err != nil {
		return 0, err
	}

	rs.serverSeq++
	rs.opLog = append(rs.opLog, op)

	return rs.serverSeq, nil
}

// applyOperationLocked applies the operation without locking (caller must hold lock)
func (rs *RoomState) applyOperationLocked(op Operation) error {
	e := rs.engine
	switch op.Type {
	case OpViewportSet:
		return e.SetViewport(op.Matrix)
	case OpViewportZoom:
		if op.Zoom <= 0 {
			return fmt.Errorf("zoom %v: must be positive", op.Zoom)
		}
		return e.ZoomToPoint(op.X, op.Y, op.Zoom)
	case OpViewportPan:
		return e.Pan(op.X, op.Y)
	case OpObjectMove:
		return e.MoveObject(op.ObjectID, op.X, op.Y)
	case OpObjectRotate:
		return e.RotateObject(op.ObjectID, op.Angle)
	case OpObjectScale:
		if op.SX == nil || op.SY == nil {
			return fmt.Errorf("%w: object.scale needs sx and sy", ErrMissingField)
		}
		return e.ScaleObject(op.ObjectID, *op.SX, *op.SY)
	case OpObjectScaleToWidth:
		return e.ScaleObjectToWidth(op.ObjectID, op.Size, op.Absolute)
	case OpObjectScaleToHeight:
		return e.ScaleObjectToHeight(op.ObjectID, op.Size, op.Absolute)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOperation, op.Type)
	}
}

// HitTest returns the object under the viewport point (x, y), or "".
func (rs *RoomState) HitTest(x, y float64) (string, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.engine.HitTest(x, y)
}

// History returns a copy of the applied operations in order.
func (rs *RoomState) History() []Operation {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]Operation, len(rs.opLog))
	copy(out, rs.opLog)
	return out
}

// GetServerTimestamp returns the current server timestamp
func GetServerTimestamp() int64 {
	return time.Now().UnixMilli()
}
