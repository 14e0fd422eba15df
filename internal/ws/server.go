// internal/ws/server.go
package ws

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/unoarena/server/internal/game"
)

// Server wires HTTP routes to the connection hub and the action processor.
type Server struct {
	hub  *Hub
	proc *game.Processor
	log  *logrus.Logger
}

// NewServer creates a Server over the given hub and processor.
func NewServer(hub *Hub, proc *game.Processor, log *logrus.Logger) *Server {
	return &Server{hub: hub, proc: proc, log: log}
}

// Routes returns the HTTP handler: a liveness endpoint at / and the
// WebSocket upgrade at /ws.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.healthHandler)
	mux.HandleFunc("/ws", s.websocketHandler)
	return mux
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "UNO WebSocket Server Running")
}

// websocketHandler upgrades the connection and runs its read loop: one
// JSON action per text frame. Malformed frames are logged and dropped;
// the connection stays open. A closed socket is treated as a leave.
func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.log.WithError(err).Warn("websocket accept failed")
		return
	}

	id := uuid.New()
	s.hub.add(id, conn)
	s.log.WithField("conn", id).Info("client connected")

	defer func() {
		s.hub.remove(id)
		s.proc.HandleDisconnect(id)
		conn.Close(websocket.StatusNormalClosure, "")
		s.log.WithField("conn", id).Info("client disconnected")
	}()

	ctx := r.Context()
	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			continue
		}

		var act game.Action
		if err := json.Unmarshal(data, &act); err != nil {
			s.log.WithError(err).WithField("conn", id).Warn("dropping malformed frame")
			continue
		}
		s.proc.Handle(id, act)
	}
}
