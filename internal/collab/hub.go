package collab

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/inamate/inamate/canvas-go/internal/engine"
)

type Room struct {
	roomID   string
	clients  map[string]*Client // clientID -> client
	presence *PresenceManager
	state    *RoomState
}

func NewRoom(roomID string, state *RoomState) *Room {
	return &Room{
		roomID:   roomID,
		clients:  make(map[string]*Client),
		presence: NewPresenceManager(),
		state:    state,
	}
}

// StateFactory creates the scene state of a room when its first client
// joins.
type StateFactory func(roomID string) *RoomState

type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room // roomID -> room
	newState   StateFactory
	register   chan *Client
	unregister chan *Client
}

func NewHub(newState StateFactory) *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		newState:   newState,
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) room(roomID string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.rooms[roomID]
	return room, ok
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.RoomID]
	if !ok {
		room = NewRoom(client.RoomID, h.newState(client.RoomID))
		h.rooms[client.RoomID] = room
	}
	room.clients[client.ClientID] = client
	h.mu.Unlock()

	// Greet the new client and sync the scene
	welcome, _ := json.Marshal(WelcomePayload{
		ClientID:  client.ClientID,
		UserID:    client.UserID,
		ServerSeq: room.state.ServerSeq(),
	})
	client.Send(&Message{Type: TypeWelcome, RoomID: client.RoomID, Payload: welcome})
	if doc, err := room.state.DocumentJSON(); err != nil {
		slog.Error("document sync", "error", err, "room", client.RoomID)
		client.Send(errorMessage("document unavailable"))
	} else {
		client.Send(&Message{Type: TypeDocSync, RoomID: client.RoomID, Payload: doc})
	}

	// Send current presence state to new client
	stateMsg := room.presence.StateMessage(client.RoomID)
	if stateMsg != nil {
		client.Send(stateMsg)
	}

	// Broadcast join to other clients
	joinPayload, _ := json.Marshal(PresenceJoinPayload{
		UserID:      client.UserID,
		DisplayName: client.DisplayName,
	})
	joinMsg := &Message{
		Type:    TypePresenceJoin,
		UserID:  client.UserID,
		Payload: joinPayload,
	}
	h.broadcastToRoom(client.RoomID, joinMsg, client.ClientID)

	slog.Info("client joined", "user", client.UserID, "room", client.RoomID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.RoomID]
	if !ok {
		h.mu.Unlock()
		return
	}

	delete(room.clients, client.ClientID)
	close(client.send)
	room.presence.Remove(client.UserID)

	if len(room.clients) == 0 {
		delete(h.rooms, client.RoomID)
	}
	h.mu.Unlock()

	// Broadcast leave to remaining clients
	leavePayload, _ := json.Marshal(PresenceLeavePayload{
		UserID: client.UserID,
	})
	leaveMsg := &Message{
		Type:    TypePresenceLeave,
		UserID:  client.UserID,
		Payload: leavePayload,
	}
	h.broadcastToRoom(client.RoomID, leaveMsg, "")

	slog.Info("client left", "user", client.UserID, "room", client.RoomID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch msg.Type {
	case TypePresenceUpdate:
		h.handlePresenceUpdate(sender, msg)
	case TypeOpSubmit:
		h.handleOperation(sender, msg)
	case TypePointerHit:
		h.handlePointerHit(sender, msg)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "user", sender.UserID)
		sender.Send(errorMessage("unknown message type: " + msg.Type))
	}
}

func (h *Hub) handlePresenceUpdate(sender *Client, msg *Message) {
	var presence PresencePayload
	if err := json.Unmarshal(msg.Payload, &presence); err != nil {
		slog.Warn("invalid presence payload", "error", err)
		return
	}

	presence.DisplayName = sender.DisplayName

	room, ok := h.room(sender.RoomID)
	if !ok {
		return
	}

	room.presence.Update(sender.UserID, &presence)

	// Broadcast to other clients in room
	outPayload, _ := json.Marshal(presence)
	outMsg := &Message{
		Type:    TypePresenceUpdate,
		UserID:  sender.UserID,
		Payload: outPayload,
	}
	h.broadcastToRoom(sender.RoomID, outMsg, sender.ClientID)
}

func (h *Hub) handleOperation(sender *Client, msg *Message) {
	var submit OperationSubmitPayload
	if err := json.Unmarshal(msg.Payload, &submit); err != nil {
		slog.Warn("invalid operation payload", "error", err, "user", sender.UserID)
		sender.Send(errorMessage("invalid operation payload"))
		return
	}
	op := submit.Operation

	room, ok := h.room(sender.RoomID)
	if !ok {
		return
	}

	seq, err := room.state.ApplyOperation(op)
	if err != nil {
		slog.Debug("operation rejected", "op", op.Type, "error", err, "user", sender.UserID)
		nack, _ := json.Marshal(OperationNackPayload{
			OperationID: op.ID,
			Reason:      err.Error(),
		})
		sender.Send(&Message{Type: TypeOpNack, Payload: nack})
		return
	}

	ack, _ := json.Marshal(OperationAckPayload{
		OperationID:     op.ID,
		ServerSeq:       seq,
		ServerTimestamp: GetServerTimestamp(),
	})
	sender.Send(&Message{Type: TypeOpAck, Seq: seq, Payload: ack})

	broadcast, _ := json.Marshal(OperationBroadcastPayload{
		Operation: op,
		UserID:    sender.UserID,
		ServerSeq: seq,
	})
	h.broadcastToRoom(sender.RoomID, &Message{
		Type:    TypeOpBroadcast,
		UserID:  sender.UserID,
		Seq:     seq,
		Payload: broadcast,
	}, sender.ClientID)
}

func (h *Hub) handlePointerHit(sender *Client, msg *Message) {
	var p PointerHitPayload
	if err := json.Unmarshal(msg.Payload, &p); err != nil {
		sender.Send(errorMessage("invalid pointer payload"))
		return
	}

	room, ok := h.room(sender.RoomID)
	if !ok {
		return
	}

	id, err := room.state.HitTest(p.X, p.Y)
	if err != nil {
		sender.Send(errorMessage(err.Error()))
		return
	}
	out, _ := json.Marshal(engine.HitTestResult{ObjectID: id, X: p.X, Y: p.Y})
	sender.Send(&Message{Type: TypeHitResult, Payload: out})
}

func (h *Hub) broadcastToRoom(roomID string, msg *Message, excludeClientID string) {
	h.mu.RLock()
	room, ok := h.rooms[roomID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}
