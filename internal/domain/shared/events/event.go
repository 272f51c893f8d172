package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OperationKind names the API operation an event describes.
type OperationKind string

const (
	OperationRequest OperationKind = "request"
	OperationModify  OperationKind = "modify"
	OperationGet     OperationKind = "get"
)

func (k OperationKind) String() string {
	return string(k)
}

func (k OperationKind) IsValid() bool {
	switch k {
	case OperationRequest, OperationModify, OperationGet:
		return true
	}
	return false
}

// OperationEvent is the broker message body. Field names are part of the wire
// contract consumed downstream.
type OperationEvent struct {
	ID        uuid.UUID     `json:"Id"`
	Name      OperationKind `json:"Name"`
	Timestamp time.Time     `json:"Timestamp"`
}

// NewOperationEvent stamps the event with at converted to UTC.
func NewOperationEvent(id uuid.UUID, kind OperationKind, at time.Time) OperationEvent {
	return OperationEvent{
		ID:        id,
		Name:      kind,
		Timestamp: at.UTC(),
	}
}

// Key is the message key: the string form of the operation id.
func (e OperationEvent) Key() string {
	return e.ID.String()
}

func (e OperationEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// OperationPublisher emits one message per API operation. A single call is one
// delivery attempt from the caller's point of view.
type OperationPublisher interface {
	PublishOperation(ctx context.Context, operationID uuid.UUID, kind OperationKind) error
}
