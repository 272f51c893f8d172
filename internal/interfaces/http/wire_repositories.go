package http

import (
	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/repository"
)

// repositories holds the persistence entry points used by the application.
// Every operation opens its own unit of work from the factory.
type repositories struct {
	uowFactory permission.UnitOfWorkFactory
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		uowFactory: repository.NewUnitOfWorkFactory(c.infra.DB),
	}
}
