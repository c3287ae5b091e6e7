package models

import (
	"encoding/json"
	"time"
)

// EventLog is the append-only record of ledger notifications, written by the
// indexer worker from the published notification stream.
type EventLog struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	EventType string          `gorm:"size:64;index;not null" json:"event_type"`
	Payload   json.RawMessage `gorm:"type:jsonb" json:"payload"`
	EmittedAt time.Time       `json:"emitted_at"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (EventLog) TableName() string {
	return "event_log"
}
