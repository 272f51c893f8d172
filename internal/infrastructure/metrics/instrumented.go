package metrics

import (
	"context"

	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
)

// InstrumentedPublisher counts publish outcomes per operation kind.
type InstrumentedPublisher struct {
	next    events.OperationPublisher
	metrics *Metrics
}

func NewInstrumentedPublisher(next events.OperationPublisher, m *Metrics) *InstrumentedPublisher {
	return &InstrumentedPublisher{next: next, metrics: m}
}

func (p *InstrumentedPublisher) PublishOperation(ctx context.Context, operationID uuid.UUID, kind events.OperationKind) error {
	err := p.next.PublishOperation(ctx, operationID, kind)
	p.metrics.PublishedEvents.WithLabelValues(kind.String(), resultOf(err)).Inc()
	return err
}

// InstrumentedSearchIndex counts search index calls per action.
type InstrumentedSearchIndex struct {
	next    permission.SearchIndex
	metrics *Metrics
}

var _ permission.SearchIndex = (*InstrumentedSearchIndex)(nil)

func NewInstrumentedSearchIndex(next permission.SearchIndex, m *Metrics) *InstrumentedSearchIndex {
	return &InstrumentedSearchIndex{next: next, metrics: m}
}

func (s *InstrumentedSearchIndex) observe(action string, err error) {
	s.metrics.IndexOperations.WithLabelValues(action, resultOf(err)).Inc()
}

func (s *InstrumentedSearchIndex) EnsureIndex(ctx context.Context) error {
	err := s.next.EnsureIndex(ctx)
	s.observe("ensure", err)
	return err
}

func (s *InstrumentedSearchIndex) IndexPermission(ctx context.Context, p *permission.Permission) error {
	err := s.next.IndexPermission(ctx, p)
	s.observe("index", err)
	return err
}

func (s *InstrumentedSearchIndex) UpdatePermission(ctx context.Context, p *permission.Permission) error {
	err := s.next.UpdatePermission(ctx, p)
	s.observe("update", err)
	return err
}

func (s *InstrumentedSearchIndex) ListAll(ctx context.Context) ([]permission.IndexedPermission, error) {
	docs, err := s.next.ListAll(ctx)
	s.observe("list", err)
	return docs, err
}
