package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	EventMetricLogged      = "metric.logged"
	EventMedicationToggled = "medication.toggled"
	EventMealLogged        = "meal.logged"
	EventMealQuickAdded    = "meal.quick_added"
	EventScheduleToggled   = "schedule.toggled"
	EventWorkoutCompleted  = "workout.completed"
	EventReseeded          = "data.reseeded"
)

// Event tells open pages that tracker data changed and should be reloaded.
type Event struct {
	ID     string    `json:"id"`
	Kind   string    `json:"kind"`
	UserID int64     `json:"userId"`
	At     time.Time `json:"at"`
}

func NewEvent(kind string, userID int64, at time.Time) Event {
	return Event{ID: uuid.NewString(), Kind: kind, UserID: userID, At: at}
}

const eventWriteTimeout = 5 * time.Second

type EventsHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	ch      chan Event
	send    func(conn *websocket.Conn, event Event) error
}

func NewEventsHub() *EventsHub {
	return &EventsHub{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan Event, 16),
		send:    writeEvent,
	}
}

func writeEvent(conn *websocket.Conn, event Event) error {
	_ = conn.SetWriteDeadline(time.Now().Add(eventWriteTimeout))
	return conn.WriteJSON(event)
}

func (h *EventsHub) Run(ctx context.Context) {
	for {
		select {
		case event := <-h.ch:
			h.fanOut(event)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// fanOut writes outside the lock so a slow client cannot stall Add, Remove
// or Count.
func (h *EventsHub) fanOut(event Event) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := h.send(conn, event); err != nil {
			h.Remove(conn)
			_ = conn.Close()
		}
	}
}

func (h *EventsHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

// Publish never blocks; events are dropped when the buffer is full.
func (h *EventsHub) Publish(event Event) {
	select {
	case h.ch <- event:
	default:
	}
}

func (h *EventsHub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *EventsHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *EventsHub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
