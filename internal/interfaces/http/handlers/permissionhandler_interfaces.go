package handlers

import (
	"context"

	"github.com/opolancoh/employee-permissions/internal/application/permission/dto"
	"github.com/opolancoh/employee-permissions/internal/application/permission/usecases"
)

// Use case interfaces for PermissionHandler

type requestPermissionUseCase interface {
	Execute(ctx context.Context, cmd usecases.GrantCommand) error
}

type modifyPermissionUseCase interface {
	Execute(ctx context.Context, cmd usecases.GrantCommand) error
}

type listPermissionsUseCase interface {
	Execute(ctx context.Context) ([]dto.EmployeePermissionsDTO, error)
}

// Use case interfaces for ReferenceDataHandler

type listEmployeesUseCase interface {
	Execute(ctx context.Context) ([]dto.EmployeeDTO, error)
}

type listPermissionTypesUseCase interface {
	Execute(ctx context.Context) ([]dto.PermissionTypeDTO, error)
}
