package events

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

func TestOperationEvent_WireFormat(t *testing.T) {
	id := uuid.MustParse("0b7a2c4e-5d1f-4b8a-9c3e-2f6d8a1b4c7e")
	local := time.FixedZone("UTC-5", -5*60*60)
	at := time.Date(2024, 3, 10, 7, 0, 0, 0, local)

	event := NewOperationEvent(id, OperationRequest, at)

	payload, err := event.Marshal()
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, id.String(), decoded["Id"])
	assert.Equal(t, "request", decoded["Name"])
	assert.Equal(t, "2024-03-10T12:00:00Z", decoded["Timestamp"])
	assert.Equal(t, id.String(), event.Key())
}

func TestOperationKind_IsValid(t *testing.T) {
	assert.True(t, OperationRequest.IsValid())
	assert.True(t, OperationModify.IsValid())
	assert.True(t, OperationGet.IsValid())
	assert.False(t, OperationKind("delete").IsValid())
}

func TestInMemoryEventDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewNopLogger())

	var wg sync.WaitGroup
	wg.Add(2)
	received := make(chan OperationEvent, 2)
	handler := func(e OperationEvent) error {
		defer wg.Done()
		received <- e
		return nil
	}
	require.NoError(t, d.Subscribe(OperationModify, handler))
	require.NoError(t, d.Subscribe(OperationModify, handler))
	require.NoError(t, d.Subscribe(OperationGet, func(OperationEvent) error {
		return errors.New("must not be called")
	}))

	require.NoError(t, d.Start())
	event := NewOperationEvent(uuid.New(), OperationModify, time.Now())
	require.NoError(t, d.Publish(event))

	wg.Wait()
	require.NoError(t, d.Stop())
	close(received)

	for got := range received {
		assert.Equal(t, event, got)
	}
}

func TestInMemoryEventDispatcher_RejectsWhenStopped(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewNopLogger())

	err := d.Publish(NewOperationEvent(uuid.New(), OperationGet, time.Now()))
	assert.EqualError(t, err, "event dispatcher is not running")
	assert.Error(t, d.Stop())
}

func TestInMemoryEventDispatcher_StopWaitsForAcceptedEvents(t *testing.T) {
	d := NewInMemoryEventDispatcher(1000, logger.NewNopLogger())

	var handled atomic.Int64
	require.NoError(t, d.Subscribe(OperationRequest, func(OperationEvent) error {
		time.Sleep(time.Millisecond)
		handled.Add(1)
		return nil
	}))
	require.NoError(t, d.Start())

	var (
		accepted atomic.Int64
		wg       sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if d.Publish(NewOperationEvent(uuid.New(), OperationRequest, time.Now())) == nil {
					accepted.Add(1)
				}
			}
		}()
	}

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, d.Stop())
	stoppedAt := handled.Load()
	wg.Wait()

	assert.Equal(t, accepted.Load(), stoppedAt)
	assert.Equal(t, stoppedAt, handled.Load())
}

func TestInMemoryEventDispatcher_SubscribeValidation(t *testing.T) {
	d := NewInMemoryEventDispatcher(0, logger.NewNopLogger())

	assert.Error(t, d.Subscribe("unknown", func(OperationEvent) error { return nil }))
	assert.Error(t, d.Subscribe(OperationGet, nil))
}
