package usecases

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// callLog records the order backends were touched in.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (c *callLog) add(name string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

type mockPermissionRepository struct {
	AddFunc                   func(p *permission.Permission)
	UpdateFunc                func(p *permission.Permission)
	GetByKeyFunc              func(ctx context.Context, key permission.Key) (*permission.Permission, error)
	ListGroupedByEmployeeFunc func(ctx context.Context) ([]permission.EmployeePermissions, error)
}

func (m *mockPermissionRepository) Add(p *permission.Permission) {
	if m.AddFunc != nil {
		m.AddFunc(p)
	}
}

func (m *mockPermissionRepository) Update(p *permission.Permission) {
	if m.UpdateFunc != nil {
		m.UpdateFunc(p)
	}
}

func (m *mockPermissionRepository) GetByKey(ctx context.Context, key permission.Key) (*permission.Permission, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockPermissionRepository) ListGroupedByEmployee(ctx context.Context) ([]permission.EmployeePermissions, error) {
	if m.ListGroupedByEmployeeFunc != nil {
		return m.ListGroupedByEmployeeFunc(ctx)
	}
	return []permission.EmployeePermissions{}, nil
}

type mockEmployeeRepository struct {
	ListFunc func(ctx context.Context) ([]*permission.Employee, error)
}

func (m *mockEmployeeRepository) Add(*permission.Employee) {}

func (m *mockEmployeeRepository) GetByID(context.Context, uuid.UUID) (*permission.Employee, error) {
	return nil, nil
}

func (m *mockEmployeeRepository) List(ctx context.Context) ([]*permission.Employee, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockPermissionTypeRepository struct {
	ListFunc func(ctx context.Context) ([]*permission.PermissionType, error)
}

func (m *mockPermissionTypeRepository) Add(*permission.PermissionType) {}

func (m *mockPermissionTypeRepository) GetByID(context.Context, uuid.UUID) (*permission.PermissionType, error) {
	return nil, nil
}

func (m *mockPermissionTypeRepository) List(ctx context.Context) ([]*permission.PermissionType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockUnitOfWork struct {
	permissions     *mockPermissionRepository
	employees       *mockEmployeeRepository
	permissionTypes *mockPermissionTypeRepository
	SaveChangesFunc func(ctx context.Context) (int64, error)
	calls           *callLog
}

func newMockUnitOfWork(calls *callLog) *mockUnitOfWork {
	return &mockUnitOfWork{
		permissions:     &mockPermissionRepository{},
		employees:       &mockEmployeeRepository{},
		permissionTypes: &mockPermissionTypeRepository{},
		calls:           calls,
	}
}

func (m *mockUnitOfWork) Permissions() permission.PermissionRepository { return m.permissions }

func (m *mockUnitOfWork) Employees() permission.EmployeeRepository { return m.employees }

func (m *mockUnitOfWork) PermissionTypes() permission.PermissionTypeRepository {
	return m.permissionTypes
}

func (m *mockUnitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	m.calls.add("store")
	if m.SaveChangesFunc != nil {
		return m.SaveChangesFunc(ctx)
	}
	return 1, nil
}

type mockUnitOfWorkFactory struct {
	uow *mockUnitOfWork
}

func (f *mockUnitOfWorkFactory) New() permission.UnitOfWork {
	return f.uow
}

type mockPublisher struct {
	PublishOperationFunc func(ctx context.Context, operationID uuid.UUID, kind events.OperationKind) error
	calls                *callLog
	kinds                []events.OperationKind
	ids                  []uuid.UUID
}

func (m *mockPublisher) PublishOperation(ctx context.Context, operationID uuid.UUID, kind events.OperationKind) error {
	m.calls.add("publish")
	m.kinds = append(m.kinds, kind)
	m.ids = append(m.ids, operationID)
	if m.PublishOperationFunc != nil {
		return m.PublishOperationFunc(ctx, operationID, kind)
	}
	return nil
}

type mockSearchIndex struct {
	EnsureIndexFunc      func(ctx context.Context) error
	IndexPermissionFunc  func(ctx context.Context, p *permission.Permission) error
	UpdatePermissionFunc func(ctx context.Context, p *permission.Permission) error
	ListAllFunc          func(ctx context.Context) ([]permission.IndexedPermission, error)
	calls                *callLog
}

func (m *mockSearchIndex) EnsureIndex(ctx context.Context) error {
	if m.EnsureIndexFunc != nil {
		return m.EnsureIndexFunc(ctx)
	}
	return nil
}

func (m *mockSearchIndex) IndexPermission(ctx context.Context, p *permission.Permission) error {
	m.calls.add("index")
	if m.IndexPermissionFunc != nil {
		return m.IndexPermissionFunc(ctx, p)
	}
	return nil
}

func (m *mockSearchIndex) UpdatePermission(ctx context.Context, p *permission.Permission) error {
	m.calls.add("index.update")
	if m.UpdatePermissionFunc != nil {
		return m.UpdatePermissionFunc(ctx, p)
	}
	return nil
}

func (m *mockSearchIndex) ListAll(ctx context.Context) ([]permission.IndexedPermission, error) {
	m.calls.add("index.list")
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) record(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, args ...any)                   { m.record(msg) }
func (m *mockLogger) Info(msg string, args ...any)                    { m.record(msg) }
func (m *mockLogger) Warn(msg string, args ...any)                    { m.record(msg) }
func (m *mockLogger) Error(msg string, args ...any)                   { m.record(msg) }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) { m.record(msg) }
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  { m.record(msg) }
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  { m.record(msg) }
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) { m.record(msg) }
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }

// fixture bundles the fakes a use case test needs.
type fixture struct {
	calls     *callLog
	uow       *mockUnitOfWork
	factory   *mockUnitOfWorkFactory
	publisher *mockPublisher
	index     *mockSearchIndex
	log       *mockLogger
}

func newFixture() *fixture {
	calls := &callLog{}
	uow := newMockUnitOfWork(calls)
	return &fixture{
		calls:     calls,
		uow:       uow,
		factory:   &mockUnitOfWorkFactory{uow: uow},
		publisher: &mockPublisher{calls: calls},
		index:     &mockSearchIndex{calls: calls},
		log:       &mockLogger{},
	}
}
