package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// GrantCommand carries the fields shared by request and modify.
type GrantCommand struct {
	EmployeeID       uuid.UUID
	PermissionTypeID uuid.UUID
	GrantedDate      time.Time
	Description      *string
}

func (c GrantCommand) Key() permission.Key {
	return permission.Key{EmployeeID: c.EmployeeID, PermissionTypeID: c.PermissionTypeID}
}

// RequestPermissionUseCase grants a permission type to an employee. The store
// write, the "request" event and the index write run in that order; the first
// failure stops the sequence and nothing already written is undone.
type RequestPermissionUseCase struct {
	uowFactory  permission.UnitOfWorkFactory
	publisher   events.OperationPublisher
	searchIndex permission.SearchIndex
	newID       func() uuid.UUID
	logger      logger.Interface
}

func NewRequestPermissionUseCase(
	uowFactory permission.UnitOfWorkFactory,
	publisher events.OperationPublisher,
	searchIndex permission.SearchIndex,
	logger logger.Interface,
) *RequestPermissionUseCase {
	return &RequestPermissionUseCase{
		uowFactory:  uowFactory,
		publisher:   publisher,
		searchIndex: searchIndex,
		newID:       uuid.New,
		logger:      logger,
	}
}

func (uc *RequestPermissionUseCase) Execute(ctx context.Context, cmd GrantCommand) error {
	ctx = context.WithoutCancel(ctx)
	key := cmd.Key()

	p, err := permission.NewPermission(key, cmd.GrantedDate, cmd.Description)
	if err != nil {
		uc.logger.Warnw("invalid permission request", "key", key.String(), "error", err)
		return err
	}

	uow := uc.uowFactory.New()
	uow.Permissions().Add(p)
	if _, err := uow.SaveChanges(ctx); err != nil {
		uc.logger.Errorw("failed to add permission", "key", key.String(), "error", err)
		return err
	}
	uc.logger.Infow("Permission successfully added in the database", "key", key.String())

	operationID := uc.newID()
	if err := uc.publisher.PublishOperation(ctx, operationID, events.OperationRequest); err != nil {
		uc.logger.Errorw("failed to publish request operation",
			"key", key.String(),
			"operation_id", operationID,
			"error", err,
		)
		return err
	}

	if err := uc.searchIndex.IndexPermission(ctx, p); err != nil {
		uc.logger.Errorw("failed to index permission", "key", key.String(), "error", err)
		return err
	}

	uc.logger.Infow("permission requested", "key", key.String(), "operation_id", operationID)
	return nil
}
