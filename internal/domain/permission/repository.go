package permission

import (
	"context"

	"github.com/google/uuid"
)

// PermissionRepository stages grant mutations; nothing is written until
// UnitOfWork.SaveChanges.
type PermissionRepository interface {
	Add(p *Permission)
	Update(p *Permission)
	// GetByKey returns the grant with Employee and PermissionType loaded, or nil, nil.
	GetByKey(ctx context.Context, key Key) (*Permission, error)
	// ListGroupedByEmployee returns every employee holding at least one grant.
	ListGroupedByEmployee(ctx context.Context) ([]EmployeePermissions, error)
}

type EmployeeRepository interface {
	Add(e *Employee)
	GetByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
}

type PermissionTypeRepository interface {
	Add(t *PermissionType)
	GetByID(ctx context.Context, id uuid.UUID) (*PermissionType, error)
	List(ctx context.Context) ([]*PermissionType, error)
}

// UnitOfWork groups the repositories of one logical operation. SaveChanges
// commits every staged mutation atomically and returns the affected row count.
type UnitOfWork interface {
	Permissions() PermissionRepository
	Employees() EmployeeRepository
	PermissionTypes() PermissionTypeRepository
	SaveChanges(ctx context.Context) (int64, error)
}

// UnitOfWorkFactory creates a fresh UnitOfWork per operation so concurrent
// requests never share staged state.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
