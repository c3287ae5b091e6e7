package notify

import "time"

// EventQueue is the RabbitMQ queue carrying every ledger event envelope.
const EventQueue = "ledger_events"

// Event is the wire envelope for a ledger event, shared by the queue and the
// websocket fan-out.
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	EmittedAt int64       `json:"emitted_at"`
}

func newEvent(eventType string, payload interface{}) Event {
	return Event{
		Type:      eventType,
		Payload:   payload,
		EmittedAt: time.Now().Unix(),
	}
}
