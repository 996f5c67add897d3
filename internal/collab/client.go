package collab

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/coder/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 64 * 1024
	sendBuffer = 256
)

var errEmptyType = errors.New("message type is required")

// Client is one websocket connection in a room. The hub owns the send
// channel and closes it on unregister.
type Client struct {
	hub         *Hub
	conn        *websocket.Conn
	send        chan []byte
	UserID      string
	DisplayName string
	RoomID      string
	ClientID    string
}

func NewClient(hub *Hub, conn *websocket.Conn, userID, displayName, roomID, clientID string) *Client {
	return &Client{
		hub:         hub,
		conn:        conn,
		send:        make(chan []byte, sendBuffer),
		UserID:      userID,
		DisplayName: displayName,
		RoomID:      roomID,
		ClientID:    clientID,
	}
}

// decode parses an inbound frame and stamps it with the sender's identity,
// so clients cannot speak for someone else.
func (c *Client) decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	if msg.Type == "" {
		return nil, errEmptyType
	}
	msg.UserID = c.UserID
	msg.ClientID = c.ClientID
	msg.RoomID = c.RoomID
	return &msg, nil
}

func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				slog.Debug("read error", "error", err, "user", c.UserID, "room", c.RoomID)
			}
			return
		}

		msg, err := c.decode(data)
		if err != nil {
			slog.Warn("invalid message", "error", err, "user", c.UserID, "room", c.RoomID)
			c.Send(errorMessage("invalid message"))
			continue
		}

		c.hub.handleMessage(c, msg)
	}
}

func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.write(ctx, message); err != nil {
				slog.Debug("write error", "error", err, "user", c.UserID, "room", c.RoomID)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) write(ctx context.Context, message []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, message)
}

func errorMessage(reason string) *Message {
	payload, _ := json.Marshal(ErrorPayload{Error: reason})
	return &Message{Type: TypeError, Payload: payload}
}

// Send queues msg for the write pump. A client that cannot keep up is
// disconnected, since a dropped op.broadcast would leave it out of sequence.
func (c *Client) Send(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err)
		return
	}

	select {
	case c.send <- data:
	default:
		slog.Warn("client send buffer full, disconnecting", "user", c.UserID, "room", c.RoomID)
		if c.conn != nil {
			c.conn.Close(websocket.StatusPolicyViolation, "too slow")
		}
	}
}
