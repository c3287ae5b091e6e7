package notify

import (
	"strategymint/pkg/config"
)

// QueueEmitter publishes ledger events to RabbitMQ for the worker to index.
type QueueEmitter struct {
	publisher *config.Publisher
	queue     string
}

func NewQueueEmitter(publisher *config.Publisher) *QueueEmitter {
	return &QueueEmitter{
		publisher: publisher,
		queue:     EventQueue,
	}
}

func (q *QueueEmitter) Emit(eventType string, payload interface{}) error {
	return q.publisher.Publish(q.queue, newEvent(eventType, payload))
}
