package httpapi

import (
	"net/http"

	"github.com/gorilla/websocket"
)

func (s *Server) SystemStatus(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Tracker.CaptureStatus(r.Context(), s.Config.MetricsDiskPath))
}

// EventsSocket streams change notifications to an open page. Identity is
// checked by the page middleware before the upgrade; cross-origin upgrades
// are refused.
func (s *Server) EventsSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.Events.Add(conn)
	defer func() {
		s.Events.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
