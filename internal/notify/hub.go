package notify

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Hub fans ledger events out to connected websocket clients. Slow clients are
// dropped rather than allowed to block an emit.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan []byte]bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan []byte]bool),
	}
}

// Subscribe registers a new event stream. The caller must Unsubscribe when done.
func (h *Hub) Subscribe() chan []byte {
	ch := make(chan []byte, 32)
	h.mu.Lock()
	h.subscribers[ch] = true
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan []byte) {
	h.mu.Lock()
	if h.subscribers[ch] {
		delete(h.subscribers, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Emit marshals the event envelope and delivers it to every subscriber.
func (h *Hub) Emit(eventType string, payload interface{}) error {
	body, err := json.Marshal(newEvent(eventType, payload))
	if err != nil {
		return err
	}

	h.mu.RLock()
	dropped := make([]chan []byte, 0)
	for ch := range h.subscribers {
		select {
		case ch <- body:
		default:
			dropped = append(dropped, ch)
		}
	}
	h.mu.RUnlock()

	for _, ch := range dropped {
		log.Warn("Dropping slow websocket subscriber")
		h.Unsubscribe(ch)
	}
	return nil
}

// SubscriberCount returns the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// HandleWebSocket upgrades the request and streams ledger events until the
// client disconnects.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorf("Failed to upgrade websocket: %v", err)
		return
	}
	defer ws.Close()

	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// Reader only watches for the client going away
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case body, ok := <-ch:
			if !ok {
				return
			}
			if err := ws.WriteMessage(websocket.TextMessage, body); err != nil {
				log.Infof("Websocket client disconnected: %v", err)
				return
			}
		case <-done:
			return
		}
	}
}
