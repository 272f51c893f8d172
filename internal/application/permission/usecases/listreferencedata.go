package usecases

import (
	"context"

	"github.com/opolancoh/employee-permissions/internal/application/permission/dto"
	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

type ListEmployeesUseCase struct {
	uowFactory permission.UnitOfWorkFactory
	logger     logger.Interface
}

func NewListEmployeesUseCase(uowFactory permission.UnitOfWorkFactory, logger logger.Interface) *ListEmployeesUseCase {
	return &ListEmployeesUseCase{uowFactory: uowFactory, logger: logger}
}

func (uc *ListEmployeesUseCase) Execute(ctx context.Context) ([]dto.EmployeeDTO, error) {
	employees, err := uc.uowFactory.New().Employees().List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list employees", "error", err)
		return nil, err
	}
	return dto.ToEmployeeDTOs(employees), nil
}

type ListPermissionTypesUseCase struct {
	uowFactory permission.UnitOfWorkFactory
	logger     logger.Interface
}

func NewListPermissionTypesUseCase(uowFactory permission.UnitOfWorkFactory, logger logger.Interface) *ListPermissionTypesUseCase {
	return &ListPermissionTypesUseCase{uowFactory: uowFactory, logger: logger}
}

func (uc *ListPermissionTypesUseCase) Execute(ctx context.Context) ([]dto.PermissionTypeDTO, error) {
	types, err := uc.uowFactory.New().PermissionTypes().List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list permission types", "error", err)
		return nil, err
	}
	return dto.ToPermissionTypeDTOs(types), nil
}
