package seeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opolancoh/employee-permissions/internal/infrastructure/database"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/persistence/models"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/repository"
	"github.com/opolancoh/employee-permissions/internal/shared/config"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

func TestLoadReferenceData_Defaults(t *testing.T) {
	data, err := LoadReferenceData(nil)
	require.NoError(t, err)

	require.Len(t, data.Employees, 3)
	assert.Equal(t, "John Doe", data.Employees[2].Name)
	require.Len(t, data.PermissionTypes, 2)
	assert.Equal(t, "Vacation", data.PermissionTypes[0].Name)
	require.NotNil(t, data.PermissionTypes[1].Description)
	assert.Equal(t, "Medical leave", *data.PermissionTypes[1].Description)
}

func TestLoadReferenceData_Invalid(t *testing.T) {
	_, err := LoadReferenceData([]byte("employees: [oops"))
	assert.Error(t, err)
}

func TestSeedReferenceData_IsRepeatable(t *testing.T) {
	gdb, err := database.Open(&config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Database: "file::memory:",
	}, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.AllModels()...))

	ctx := context.Background()
	factory := repository.NewUnitOfWorkFactory(gdb)
	data, err := LoadReferenceData(nil)
	require.NoError(t, err)

	affected, err := SeedReferenceData(ctx, factory.New(), data, logger.NewNopLogger())
	require.NoError(t, err)
	assert.EqualValues(t, 5, affected)

	affected, err = SeedReferenceData(ctx, factory.New(), data, logger.NewNopLogger())
	require.NoError(t, err)
	assert.Zero(t, affected)

	employees, err := factory.New().Employees().List(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 3)
}

func TestSeedReferenceData_RejectsBadIDs(t *testing.T) {
	data, err := LoadReferenceData([]byte("employees:\n  - id: not-a-uuid\n    name: Eve\n"))
	require.NoError(t, err)

	_, err = SeedReferenceData(context.Background(), nil, data, logger.NewNopLogger())
	assert.ErrorContains(t, err, "invalid employee id")
}
