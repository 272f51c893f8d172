package http

import (
	"github.com/opolancoh/employee-permissions/internal/application/permission/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Permissions
	requestPermissionUC *usecases.RequestPermissionUseCase
	modifyPermissionUC  *usecases.ModifyPermissionUseCase
	listPermissionsUC   *usecases.ListPermissionsUseCase

	// Reference data
	listEmployeesUC       *usecases.ListEmployeesUseCase
	listPermissionTypesUC *usecases.ListPermissionTypesUseCase
}

func (c *Container) initUseCases() {
	f := c.repos.uowFactory
	pub := c.infra.Publisher
	idx := c.infra.SearchIndex

	c.ucs = &allUseCases{
		requestPermissionUC:   usecases.NewRequestPermissionUseCase(f, pub, idx, c.log),
		modifyPermissionUC:    usecases.NewModifyPermissionUseCase(f, pub, idx, c.log),
		listPermissionsUC:     usecases.NewListPermissionsUseCase(f, pub, idx, c.log),
		listEmployeesUC:       usecases.NewListEmployeesUseCase(f, c.log),
		listPermissionTypesUC: usecases.NewListPermissionTypesUseCase(f, c.log),
	}
}
