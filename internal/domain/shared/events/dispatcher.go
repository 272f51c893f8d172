package events

import (
	"fmt"
	"sync"

	"github.com/opolancoh/employee-permissions/internal/shared/goroutine"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// EventHandler consumes operation events delivered by the in-memory dispatcher.
type EventHandler func(event OperationEvent) error

// InMemoryEventDispatcher fans operation events out to in-process subscribers.
type InMemoryEventDispatcher struct {
	handlers map[OperationKind][]EventHandler
	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	eventCh  chan OperationEvent
	wg       sync.WaitGroup
	inFlight sync.WaitGroup
	logger   logger.Interface
}

// NewInMemoryEventDispatcher creates a new in-memory event dispatcher
func NewInMemoryEventDispatcher(bufferSize int, log logger.Interface) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	return &InMemoryEventDispatcher{
		handlers: make(map[OperationKind][]EventHandler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan OperationEvent, bufferSize),
		logger:   log,
	}
}

// Publish enqueues event without blocking. The read lock is held across the
// send so Stop cannot begin draining while an event is on its way in.
func (d *InMemoryEventDispatcher) Publish(event OperationEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event channel is full")
	}
}

// Subscribe registers a handler for one operation kind.
func (d *InMemoryEventDispatcher) Subscribe(kind OperationKind, handler EventHandler) error {
	if !kind.IsValid() {
		return fmt.Errorf("unknown operation kind %q", kind)
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[kind] = append(d.handlers[kind], handler)
	return nil
}

// Start starts the event dispatcher
func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}

	d.running = true
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		d.processEvents()
	}()

	return nil
}

// Stop drains queued events and waits for the loop and every handler to finish.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}

	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	d.inFlight.Wait()

	return nil
}

func (d *InMemoryEventDispatcher) processEvents() {
	for {
		select {
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.handleEvent(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.handleEvent(event)
		}
	}
}

func (d *InMemoryEventDispatcher) handleEvent(event OperationEvent) {
	d.mu.RLock()
	handlers := d.handlers[event.Name]
	d.mu.RUnlock()

	for _, handler := range handlers {
		h := handler
		d.inFlight.Add(1)
		goroutine.SafeGo(d.logger, "operation-event-handler", func() {
			defer d.inFlight.Done()
			if err := h(event); err != nil {
				d.logger.Errorw("failed to handle operation event",
					"operation_id", event.ID,
					"operation", event.Name,
					"error", err,
				)
			}
		})
	}
}
