package ws

import (
	"context"
	"net/http"

	"github.com/coder/websocket"

	"github.com/theaftaab/govassist/frontend"
	"github.com/theaftaab/govassist/logging"
	"github.com/theaftaab/govassist/runner"
)

// Server upgrades HTTP requests to websocket sessions and feeds them through
// the runner. The room name comes from the "room" query parameter.
type Server struct {
	runner *runner.Runner
	logger *logging.AssistantLogger
}

// NewServer wires the websocket endpoint to a runner.
func NewServer(r *runner.Runner, logger *logging.AssistantLogger) *Server {
	if logger == nil {
		logger = logging.NewLogger(nil)
	}
	return &Server{
		runner: r,
		logger: logger.WithComponent("ws_server"),
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	if room == "" {
		http.Error(w, "missing room parameter", http.StatusBadRequest)
		return
	}

	wsConn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket accept failed for room %s: %v", room, err)
		return
	}

	conn := NewConn(wsConn, s.logger)
	defer conn.Close()

	s.serve(r.Context(), room, conn)
}

// serve runs one room's session until the connection drops.
func (s *Server) serve(ctx context.Context, room string, conn *Conn) {
	logger := s.logger.WithRoom(room)

	notifier := frontend.NewNotifier(conn, s.logger)
	_, greeting, err := s.runner.StartSession(ctx, room, notifier)
	if err != nil {
		logger.Error("session start failed: %v", err)
		return
	}
	defer s.runner.EndSession(room)

	if greeting != "" {
		if err := conn.SendMessage(ctx, greeting); err != nil {
			logger.Warn("greeting delivery failed: %v", err)
			return
		}
	}

	for {
		env, err := conn.Read(ctx)
		if err != nil {
			logger.Info("connection closed: %v", err)
			return
		}

		switch env.Type {
		case TypeUtterance:
			replies, err := s.runner.HandleUtterance(ctx, room, env.Text)
			if err != nil {
				logger.Error("utterance handling failed: %v", err)
			}
			for _, reply := range replies {
				if err := conn.SendMessage(ctx, reply); err != nil {
					logger.Warn("reply delivery failed: %v", err)
					return
				}
			}
		case TypeData:
			if err := s.runner.HandleData(ctx, room, env.Payload); err != nil {
				logger.Warn("data packet rejected: %v", err)
			}
		default:
			logger.Warn("unknown envelope type %q", env.Type)
		}
	}
}
