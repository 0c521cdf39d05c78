package socket

import (
	"log"
	"net/http"

	"roomie_feed/models"

	socketio "github.com/googollee/go-socket.io"
)

// MatchNotifier pushes match events to connected users
type MatchNotifier interface {
	NotifyMatch(event models.MatchEvent)
}

// Server wraps the Socket.IO server. Every user joins a room named after their id.
type Server struct {
	io *socketio.Server
}

var _ MatchNotifier = (*Server)(nil)

// NewSocketServer initializes and returns a new Socket.IO server
func NewSocketServer() *Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", models.EventJoin, func(c socketio.Conn, data map[string]string) {
		userID := data["userId"]
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		log.Printf("👥 Socket %s joined room %s", c.ID(), userID)
		c.Join(userID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Printf("❌ Socket error: %v", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return &Server{io: server}
}

// Serve runs the socket event loop until Close
func (s *Server) Serve() {
	if err := s.io.Serve(); err != nil {
		log.Printf("❌ Socket server stopped: %v", err)
	}
}

func (s *Server) Close() error {
	return s.io.Close()
}

func (s *Server) Handler() http.Handler {
	return s.io
}

// NotifyMatch sends the event to the room of event.UserID
func (s *Server) NotifyMatch(event models.MatchEvent) {
	if !s.io.BroadcastToRoom("/", event.UserID, models.EventNewMatch, event) {
		log.Printf("⚠️ No listeners for match %s in room %s", event.MatchID, event.UserID)
	}
}
