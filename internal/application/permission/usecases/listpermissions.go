package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/application/permission/dto"
	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// ListPermissionsUseCase answers from the record store. The search index is
// queried too but its documents never reach the response; only a failure does.
type ListPermissionsUseCase struct {
	uowFactory  permission.UnitOfWorkFactory
	publisher   events.OperationPublisher
	searchIndex permission.SearchIndex
	newID       func() uuid.UUID
	logger      logger.Interface
}

func NewListPermissionsUseCase(
	uowFactory permission.UnitOfWorkFactory,
	publisher events.OperationPublisher,
	searchIndex permission.SearchIndex,
	logger logger.Interface,
) *ListPermissionsUseCase {
	return &ListPermissionsUseCase{
		uowFactory:  uowFactory,
		publisher:   publisher,
		searchIndex: searchIndex,
		newID:       uuid.New,
		logger:      logger,
	}
}

func (uc *ListPermissionsUseCase) Execute(ctx context.Context) ([]dto.EmployeePermissionsDTO, error) {
	ctx = context.WithoutCancel(ctx)

	grouped, err := uc.uowFactory.New().Permissions().ListGroupedByEmployee(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list permissions", "error", err)
		return nil, err
	}
	uc.logger.Infow("Permissions successfully fetched from the database.", "employees", len(grouped))

	operationID := uc.newID()
	if err := uc.publisher.PublishOperation(ctx, operationID, events.OperationGet); err != nil {
		uc.logger.Errorw("failed to publish get operation", "operation_id", operationID, "error", err)
		return nil, err
	}

	indexed, err := uc.searchIndex.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to read search index", "error", err)
		return nil, err
	}
	uc.logger.Debugw("search index read", "documents", len(indexed))

	return dto.ToEmployeePermissionsDTOs(grouped), nil
}
