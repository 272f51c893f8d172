package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	"github.com/opolancoh/employee-permissions/internal/shared/errors"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// ModifyPermissionUseCase amends an existing grant. A missing grant is a
// NotFound error, never an implicit create.
type ModifyPermissionUseCase struct {
	uowFactory  permission.UnitOfWorkFactory
	publisher   events.OperationPublisher
	searchIndex permission.SearchIndex
	newID       func() uuid.UUID
	logger      logger.Interface
}

func NewModifyPermissionUseCase(
	uowFactory permission.UnitOfWorkFactory,
	publisher events.OperationPublisher,
	searchIndex permission.SearchIndex,
	logger logger.Interface,
) *ModifyPermissionUseCase {
	return &ModifyPermissionUseCase{
		uowFactory:  uowFactory,
		publisher:   publisher,
		searchIndex: searchIndex,
		newID:       uuid.New,
		logger:      logger,
	}
}

func (uc *ModifyPermissionUseCase) Execute(ctx context.Context, cmd GrantCommand) error {
	ctx = context.WithoutCancel(ctx)
	key := cmd.Key()

	if err := key.Validate(); err != nil {
		return err
	}

	uow := uc.uowFactory.New()
	existing, err := uow.Permissions().GetByKey(ctx, key)
	if err != nil {
		uc.logger.Errorw("failed to load permission", "key", key.String(), "error", err)
		return err
	}
	if existing == nil {
		uc.logger.Warnw("permission to modify does not exist", "key", key.String())
		return errors.NewNotFoundError("Permission not found.")
	}

	if err := existing.Amend(cmd.GrantedDate, cmd.Description); err != nil {
		return err
	}

	uow.Permissions().Update(existing)
	if _, err := uow.SaveChanges(ctx); err != nil {
		uc.logger.Errorw("failed to update permission", "key", key.String(), "error", err)
		return err
	}
	uc.logger.Infow("Permission successfully updated in the database", "key", key.String())

	operationID := uc.newID()
	if err := uc.publisher.PublishOperation(ctx, operationID, events.OperationModify); err != nil {
		uc.logger.Errorw("failed to publish modify operation",
			"key", key.String(),
			"operation_id", operationID,
			"error", err,
		)
		return err
	}

	if err := uc.searchIndex.UpdatePermission(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update indexed permission", "key", key.String(), "error", err)
		return err
	}

	uc.logger.Infow("permission modified", "key", key.String(), "operation_id", operationID)
	return nil
}
