package migration

import (
	"github.com/opolancoh/employee-permissions/internal/infrastructure/persistence/models"
)

// AutoMigrateModels are migrated in order: reference tables before grants.
func AutoMigrateModels() []interface{} {
	return models.AllModels()
}
