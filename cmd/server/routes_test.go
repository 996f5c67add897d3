package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/go-cmp/cmp"

	"github.com/inamate/inamate/canvas-go/internal/auth"
	"github.com/inamate/inamate/canvas-go/internal/collab"
	"github.com/inamate/inamate/canvas-go/internal/config"
	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/engine"
)

func testServer(t *testing.T) (*httptest.Server, *auth.Service) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		AllowedOrigins: "*",
		LogLevel:       "info",
		RetinaScaling:  1,
	}
	svc := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)
	hub := collab.NewHub(roomStateFactory(cfg))
	go hub.Run()

	srv := httptest.NewServer(newRouter(cfg, hub, svc))
	t.Cleanup(srv.Close)
	return srv, svc
}

func hitDocument(t *testing.T) json.RawMessage {
	t.Helper()
	doc := document.NewEmptyDocument("proj_1", "Test", "scene_1", "root")
	data, _ := json.Marshal(map[string]float64{"width": 40, "height": 20})
	doc.AddObject("root", document.ObjectNode{
		ID:        "a",
		Type:      document.ObjectTypeShapeRect,
		Transform: document.Transform{X: 10, Y: 10, SX: 1, SY: 1},
		Style:     document.Style{Fill: "#fff", Opacity: 1},
		Visible:   true,
		Data:      data,
	})
	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestHitEndpoint(t *testing.T) {
	srv, _ := testServer(t)
	doc := hitDocument(t)

	tests := []struct {
		name       string
		scene      string
		body       any
		wantStatus int
		wantHit    string
	}{
		{"hit", "scene_1", hitRequest{Document: doc, X: 20, Y: 20}, http.StatusOK, "a"},
		{"miss", "scene_1", hitRequest{Document: doc, X: 100, Y: 90}, http.StatusOK, ""},
		{"unknown scene", "scene_2", hitRequest{Document: doc, X: 20, Y: 20}, http.StatusNotFound, ""},
		{"no document", "scene_1", hitRequest{X: 20, Y: 20}, http.StatusBadRequest, ""},
		{"bad body", "scene_1", "nope", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			resp, err := http.Post(srv.URL+"/api/scenes/"+tt.scene+"/hit", "application/json", bytes.NewReader(body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if resp.StatusCode != http.StatusOK {
				return
			}
			var got engine.HitTestResult
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatal(err)
			}
			if got.ObjectID != tt.wantHit {
				t.Errorf("hit = %q, want %q", got.ObjectID, tt.wantHit)
			}
		})
	}
}

func TestSessionAndMe(t *testing.T) {
	srv, _ := testServer(t)

	resp, err := http.Post(srv.URL+"/auth/session", "application/json", strings.NewReader(`{"displayName":"ada"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var session auth.Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		t.Fatal(err)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	me, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer me.Body.Close()
	var user auth.User
	if err := json.NewDecoder(me.Body).Decode(&user); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(session.User, user); diff != "" {
		t.Errorf("user mismatch (-want +got):\n%s", diff)
	}
}

func TestWebSocketRequiresToken(t *testing.T) {
	srv, _ := testServer(t)
	resp, err := http.Get(srv.URL + "/ws/canvas/room_1")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestWebSocketJoin(t *testing.T) {
	srv, svc := testServer(t)
	session, err := svc.IssueSession("ada")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/canvas/room_1?token=" + session.Token
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	read := func() collab.Message {
		t.Helper()
		_, data, err := conn.Read(ctx)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var msg collab.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatal(err)
		}
		return msg
	}

	welcome := read()
	if welcome.Type != collab.TypeWelcome {
		t.Fatalf("first message = %q", welcome.Type)
	}
	var w collab.WelcomePayload
	if err := json.Unmarshal(welcome.Payload, &w); err != nil {
		t.Fatal(err)
	}
	if w.UserID != session.User.ID {
		t.Errorf("welcome user = %q, want %q", w.UserID, session.User.ID)
	}

	sync := read()
	if sync.Type != collab.TypeDocSync {
		t.Fatalf("second message = %q", sync.Type)
	}
	var doc document.InDocument
	if err := json.Unmarshal(sync.Payload, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Scenes) != 1 {
		t.Errorf("synced %d scenes", len(doc.Scenes))
	}

	// A pan round-trips as an ack.
	op, _ := json.Marshal(collab.OperationSubmitPayload{Operation: collab.Operation{ID: "op_1", Type: collab.OpViewportPan, X: 5}})
	submit, _ := json.Marshal(collab.Message{Type: collab.TypeOpSubmit, Payload: op})
	if err := conn.Write(ctx, websocket.MessageText, submit); err != nil {
		t.Fatal(err)
	}
	for {
		msg := read()
		if msg.Type == collab.TypePresenceState {
			continue
		}
		if msg.Type != collab.TypeOpAck || msg.Seq != 1 {
			t.Errorf("reply = %s seq %d", msg.Type, msg.Seq)
		}
		break
	}
}
