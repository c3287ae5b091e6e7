package main

import (
	"encoding/json"
	"os"
	"time"

	"strategymint/internal/models"
	"strategymint/internal/notify"
	"strategymint/pkg/config"

	logrus "github.com/sirupsen/logrus"
)

// indexEvent writes one published ledger event into the event log.
func indexEvent(msg []byte) error {
	var event notify.Event
	if err := json.Unmarshal(msg, &event); err != nil {
		logrus.Errorf("Failed to unmarshal event: %v", err)
		// Malformed messages are dropped, requeueing cannot fix them
		return nil
	}

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		logrus.Errorf("Failed to marshal event payload: %v", err)
		return nil
	}

	record := models.EventLog{
		EventType: event.Type,
		Payload:   payload,
		EmittedAt: time.Unix(event.EmittedAt, 0),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		logrus.Errorf("Failed to index event %s: %v", event.Type, err)
		return err
	}

	logrus.WithFields(logrus.Fields{
		"event_type": event.Type,
		"emitted_at": event.EmittedAt,
	}).Info("Indexed ledger event")
	return nil
}

func main() {
	// Initialize logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	config.InitDB()

	// Initialize RabbitMQ
	config.InitRabbitMQ()
	defer config.RabbitMQ.Close()

	// Operators can drop a poisoned backlog before consuming starts.
	// "purge" discards pending messages, "reset" deletes the queue so the
	// consumer declares it fresh.
	switch os.Getenv("EVENT_QUEUE_MAINTENANCE") {
	case "purge":
		if err := config.PurgeQueue(notify.EventQueue); err != nil {
			logrus.Warnf("Failed to purge event queue: %v", err)
		}
	case "reset":
		if err := config.DeleteQueue(notify.EventQueue); err != nil {
			logrus.Warnf("Failed to reset event queue: %v", err)
		}
	}

	// Create consumer for the ledger event queue
	msgConsumer, err := config.NewConsumer(notify.EventQueue)
	if err != nil {
		logrus.Fatal("Failed to create consumer: ", err)
	}
	defer msgConsumer.Close()

	logrus.Info("Event indexer worker started, waiting for messages...")

	if err := msgConsumer.Consume(indexEvent); err != nil {
		logrus.Fatal("Consumer stopped: ", err)
	}
	logrus.Info("Delivery channel closed, shutting down")
}
