package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueMaintenanceRequiresConnection(t *testing.T) {
	prev := RabbitMQ
	RabbitMQ = nil
	defer func() { RabbitMQ = prev }()

	t.Run("Delete Queue", func(t *testing.T) {
		err := DeleteQueue("ledger_events")
		assert.ErrorContains(t, err, "not initialized")
	})

	t.Run("Purge Queue", func(t *testing.T) {
		err := PurgeQueue("ledger_events")
		assert.ErrorContains(t, err, "not initialized")
	})

	t.Run("New Publisher", func(t *testing.T) {
		_, err := NewPublisher()
		assert.ErrorContains(t, err, "not initialized")
	})
}
