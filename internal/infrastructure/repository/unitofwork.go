package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/persistence/mappers"
	"github.com/opolancoh/employee-permissions/internal/shared/db"
	"github.com/opolancoh/employee-permissions/internal/shared/errors"
)

// stagedOp is one pending write. run returns the rows it affected.
type stagedOp struct {
	desc string
	run  func(tx *gorm.DB) (int64, error)
}

// UnitOfWork collects repository mutations and writes them in one transaction
// on SaveChanges. It is not safe for concurrent use; create one per operation.
type UnitOfWork struct {
	db        *gorm.DB
	txManager *db.TransactionManager
	mapper    mappers.PermissionMapper
	ops       []stagedOp

	permissions     *PermissionRepository
	employees       *EmployeeRepository
	permissionTypes *PermissionTypeRepository
}

func NewUnitOfWork(gdb *gorm.DB) *UnitOfWork {
	u := &UnitOfWork{
		db:        gdb,
		txManager: db.NewTransactionManager(gdb),
		mapper:    mappers.NewPermissionMapper(),
	}
	u.permissions = &PermissionRepository{uow: u}
	u.employees = &EmployeeRepository{uow: u}
	u.permissionTypes = &PermissionTypeRepository{uow: u}
	return u
}

func (u *UnitOfWork) Permissions() permission.PermissionRepository {
	return u.permissions
}

func (u *UnitOfWork) Employees() permission.EmployeeRepository {
	return u.employees
}

func (u *UnitOfWork) PermissionTypes() permission.PermissionTypeRepository {
	return u.permissionTypes
}

func (u *UnitOfWork) stage(desc string, run func(tx *gorm.DB) (int64, error)) {
	u.ops = append(u.ops, stagedOp{desc: desc, run: run})
}

// Pending returns the number of staged, uncommitted operations.
func (u *UnitOfWork) Pending() int {
	return len(u.ops)
}

// SaveChanges commits every operation staged since the previous call as one
// transaction. The staged list is cleared whether or not the commit succeeds.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	ops := u.ops
	u.ops = nil

	if len(ops) == 0 {
		return 0, nil
	}

	var (
		affected int64
		failed   string
	)
	err := u.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := u.txManager.GetTx(txCtx)
		for _, op := range ops {
			n, err := op.run(tx)
			if err != nil {
				failed = op.desc
				return err
			}
			affected += n
		}
		return nil
	})
	if err != nil {
		return 0, translateWriteError(err, failed)
	}

	return affected, nil
}

// reader returns the handle for queries outside SaveChanges.
func (u *UnitOfWork) reader(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, u.db)
}

// translateWriteError maps driver failures onto the error taxonomy: constraint
// violations become conflicts, everything else a storage error.
func translateWriteError(err error, desc string) error {
	if errors.IsAppError(err) {
		return err
	}
	if errors.IsDuplicateError(err) {
		return errors.NewConflictError("permission already exists", desc).WithCause(err)
	}
	if errors.IsForeignKeyError(err) {
		return errors.NewConflictError("referenced employee or permission type does not exist", desc).WithCause(err)
	}
	return errors.NewStorageError("failed to save changes", err)
}

// UnitOfWorkFactory hands out a fresh UnitOfWork per operation.
type UnitOfWorkFactory struct {
	db *gorm.DB
}

func NewUnitOfWorkFactory(gdb *gorm.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: gdb}
}

func (f *UnitOfWorkFactory) New() permission.UnitOfWork {
	return NewUnitOfWork(f.db)
}
