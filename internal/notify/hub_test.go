package notify

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubEmit(t *testing.T) {
	t.Run("Delivers To All Subscribers", func(t *testing.T) {
		hub := NewHub()
		a := hub.Subscribe()
		b := hub.Subscribe()
		defer hub.Unsubscribe(a)
		defer hub.Unsubscribe(b)

		err := hub.Emit("nft_minted", map[string]string{"strategy_id": "momentum-v1"})
		require.NoError(t, err)

		for _, ch := range []chan []byte{a, b} {
			var ev Event
			require.NoError(t, json.Unmarshal(<-ch, &ev))
			assert.Equal(t, "nft_minted", ev.Type)
			assert.NotZero(t, ev.EmittedAt)
			payload, ok := ev.Payload.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "momentum-v1", payload["strategy_id"])
		}
	})

	t.Run("No Subscribers Is Not An Error", func(t *testing.T) {
		hub := NewHub()
		assert.NoError(t, hub.Emit("minting_toggled", map[string]bool{"is_active": false}))
	})

	t.Run("Unsubscribed Channel Stops Receiving", func(t *testing.T) {
		hub := NewHub()
		ch := hub.Subscribe()
		hub.Unsubscribe(ch)
		assert.Equal(t, 0, hub.SubscriberCount())

		require.NoError(t, hub.Emit("profits_added", nil))
		_, open := <-ch
		assert.False(t, open)
	})

	t.Run("Slow Subscriber Is Dropped", func(t *testing.T) {
		hub := NewHub()
		ch := hub.Subscribe()

		// Fill the buffer without reading
		for i := 0; i < 40; i++ {
			require.NoError(t, hub.Emit("profits_added", nil))
		}
		assert.Equal(t, 0, hub.SubscriberCount())

		// Channel was closed after its buffered events
		n := 0
		for range ch {
			n++
		}
		assert.Equal(t, 32, n)
	})
}

type stubEmitter struct {
	calls int
	err   error
}

func (s *stubEmitter) Emit(eventType string, payload interface{}) error {
	s.calls++
	return s.err
}

func TestMultiEmitter(t *testing.T) {
	t.Run("Fans Out To Every Sink", func(t *testing.T) {
		a, b := &stubEmitter{}, &stubEmitter{}
		multi := NewMultiEmitter(a, b)

		require.NoError(t, multi.Emit("nft_minted", nil))
		assert.Equal(t, 1, a.calls)
		assert.Equal(t, 1, b.calls)
	})

	t.Run("Failing Sink Does Not Stop The Rest", func(t *testing.T) {
		boom := errors.New("broker down")
		a := &stubEmitter{err: boom}
		b := &stubEmitter{}
		multi := NewMultiEmitter(a, b)

		err := multi.Emit("nft_minted", nil)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, b.calls, "second sink still receives the event")
	})
}
