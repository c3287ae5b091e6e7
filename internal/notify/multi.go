package notify

import (
	"strategymint/internal/ledger"

	log "github.com/sirupsen/logrus"
)

// MultiEmitter delivers each event to every sink. Delivery keeps going past a
// failing sink; the first error is returned.
type MultiEmitter []ledger.Emitter

func NewMultiEmitter(emitters ...ledger.Emitter) MultiEmitter {
	return MultiEmitter(emitters)
}

func (m MultiEmitter) Emit(eventType string, payload interface{}) error {
	var first error
	for _, e := range m {
		if err := e.Emit(eventType, payload); err != nil {
			log.Warnf("Event sink failed for %s: %v", eventType, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
