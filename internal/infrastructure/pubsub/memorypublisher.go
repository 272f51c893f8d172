package pubsub

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	apperrors "github.com/opolancoh/employee-permissions/internal/shared/errors"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// MemoryPublisher delivers operation events to in-process subscribers. It is
// meant for local development and tests where no broker is running.
type MemoryPublisher struct {
	dispatcher *events.InMemoryEventDispatcher
	now        func() time.Time
	logger     logger.Interface
}

// NewMemoryPublisher starts a dispatcher that logs every operation it receives.
func NewMemoryPublisher(bufferSize int, log logger.Interface) (*MemoryPublisher, error) {
	log = log.Named("memory-broker")
	dispatcher := events.NewInMemoryEventDispatcher(bufferSize, log)

	for _, kind := range []events.OperationKind{events.OperationRequest, events.OperationModify, events.OperationGet} {
		if err := dispatcher.Subscribe(kind, func(event events.OperationEvent) error {
			log.Debugw("operation event received", "operation_id", event.ID, "operation", event.Name)
			return nil
		}); err != nil {
			return nil, err
		}
	}
	if err := dispatcher.Start(); err != nil {
		return nil, err
	}

	return &MemoryPublisher{
		dispatcher: dispatcher,
		now:        time.Now,
		logger:     log,
	}, nil
}

// Subscribe adds a handler for one operation kind.
func (p *MemoryPublisher) Subscribe(kind events.OperationKind, handler events.EventHandler) error {
	return p.dispatcher.Subscribe(kind, handler)
}

func (p *MemoryPublisher) PublishOperation(_ context.Context, operationID uuid.UUID, kind events.OperationKind) error {
	if err := p.dispatcher.Publish(events.NewOperationEvent(operationID, kind, p.now())); err != nil {
		return apperrors.NewPublishError("failed to publish operation event", err)
	}
	return nil
}

func (p *MemoryPublisher) Close() error {
	return p.dispatcher.Stop()
}
