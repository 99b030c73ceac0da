// Package api pkg/api/events.go streams sync events to websocket
// subscribers.
package api

import (
	"context"
	"net/http"
	stdsync "sync"

	"github.com/gorilla/websocket"

	"github.com/linkmirror/linkmirror/pkg/models"
)

const subscriberBuffer = 16

var upgrader = websocket.Upgrader{
	// The API already allows any origin via the CORS middleware; the
	// websocket endpoint matches.
	CheckOrigin: func(*http.Request) bool { return true },
}

// eventHub fans the sync event stream out to websocket subscribers. A
// subscriber that stops draining loses events rather than stalling the
// hub.
type eventHub struct {
	mu          stdsync.Mutex
	subscribers map[chan models.SyncEvent]struct{}
}

func newEventHub() *eventHub {
	return &eventHub{
		subscribers: make(map[chan models.SyncEvent]struct{}),
	}
}

// run consumes the engine's event stream until the context is cancelled.
func (h *eventHub) run(ctx context.Context, events <-chan models.SyncEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			h.broadcast(event)
		}
	}
}

func (h *eventHub) broadcast(event models.SyncEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (h *eventHub) subscribe() chan models.SyncEvent {
	ch := make(chan models.SyncEvent, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	return ch
}

func (h *eventHub) unsubscribe(ch chan models.SyncEvent) {
	h.mu.Lock()
	delete(h.subscribers, ch)
	h.mu.Unlock()
}

func (s *APIServer) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("Error upgrading event subscriber: %v", err)
		return
	}
	defer conn.Close()

	ch := s.hub.subscribe()
	defer s.hub.unsubscribe(ch)

	// Drain the client side so a close is noticed even while no events
	// are flowing.
	closed := make(chan struct{})

	go func() {
		defer close(closed)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case event := <-ch:
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	}
}
