package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/inamate/inamate/canvas-go/internal/auth"
	"github.com/inamate/inamate/canvas-go/internal/collab"
	"github.com/inamate/inamate/canvas-go/internal/config"
	"github.com/inamate/inamate/canvas-go/internal/document"
	"github.com/inamate/inamate/canvas-go/internal/engine"
	mw "github.com/inamate/inamate/canvas-go/internal/middleware"
)

const maxHitRequestSize = 4 << 20

func newRouter(cfg *config.Config, hub *collab.Hub, authService *auth.Service) *mux.Router {
	authHandler := auth.NewHandler(authService)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Auth routes (public)
	r.HandleFunc("/auth/session", authHandler.CreateSession).Methods("POST", "OPTIONS")
	r.Handle("/auth/me", authService.AuthMiddleware(http.HandlerFunc(authHandler.Me))).Methods("GET")

	// Stateless scene queries
	r.HandleFunc("/api/scenes/{sceneId}/hit", handleHitTest).Methods("POST", "OPTIONS")

	// WebSocket endpoint
	origins := mw.Hosts(cfg.Origins())
	r.Handle("/ws/canvas/{roomId}", authService.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, origins)
	})))

	return r
}

// roomStateFactory gives every new room its own copy of the sample scene.
func roomStateFactory(cfg *config.Config) collab.StateFactory {
	return func(roomID string) *collab.RoomState {
		doc := document.NewSampleDocument(roomID)
		for id, scene := range doc.Scenes {
			scene.RetinaScaling = cfg.RetinaScaling
			doc.Scenes[id] = scene
		}
		return collab.NewRoomState(doc, cfg.CanvasWidth, cfg.CanvasHeight)
	}
}

type hitRequest struct {
	Document json.RawMessage `json:"document"`
	X        float64         `json:"x"`
	Y        float64         `json:"y"`
	Width    float64         `json:"width,omitempty"`
	Height   float64         `json:"height,omitempty"`
}

func handleHitTest(w http.ResponseWriter, r *http.Request) {
	sceneID := mux.Vars(r)["sceneId"]

	var req hitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxHitRequestSize)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if len(req.Document) == 0 || string(req.Document) == "null" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document is required"})
		return
	}

	e := engine.NewEngine()
	if err := e.LoadDocument(string(req.Document)); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := e.SetScene(sceneID); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "scene not found"})
		return
	}
	e.SetCanvasSize(req.Width, req.Height)

	id, err := e.HitTest(req.X, req.Y)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidViewport) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		slog.Error("hit test failed", "error", err, "scene", sceneID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, engine.HitTestResult{ObjectID: id, X: req.X, Y: req.Y})
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *collab.Hub, origins []string) {
	roomID := mux.Vars(r)["roomId"]

	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: origins,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := collab.NewClient(hub, conn, user.ID, user.DisplayName, roomID, clientID)

	hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
