package events

import (
	"log/slog"
	"sync"
)

const subscriberBuffer = 16

type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
	log     *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{clients: make(map[chan string]struct{}), log: log}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, subscriberBuffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Subscribers returns the number of connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish delivers evt to every subscriber. Slow subscribers miss events.
func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
			h.log.Debug("event dropped for slow subscriber")
		}
	}
}

// Notify publishes a session transition.
func (h *Hub) Notify(typ string, data map[string]any) {
	h.Publish(MakeEvent("", typ, data))
}
