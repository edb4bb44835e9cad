package feed

import "sync"

// Hub fans submission events out to dashboards watching a form. Subscribers
// get a buffered channel; events for forms nobody watches are dropped.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint]map[chan []byte]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[uint]map[chan []byte]struct{})}
}

func (h *Hub) Subscribe(formID uint) chan []byte {
	ch := make(chan []byte, 100)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[formID] == nil {
		h.subscribers[formID] = make(map[chan []byte]struct{})
	}
	h.subscribers[formID][ch] = struct{}{}
	return ch
}

func (h *Hub) Unsubscribe(formID uint, ch chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.subscribers[formID]; ok {
		delete(subs, ch)
		if len(subs) == 0 {
			delete(h.subscribers, formID)
		}
	}
}

// Broadcast delivers to every watcher of the form without blocking intake:
// a watcher whose buffer is full misses the event.
func (h *Hub) Broadcast(formID uint, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subscribers[formID] {
		select {
		case ch <- payload:
		default:
		}
	}
}
