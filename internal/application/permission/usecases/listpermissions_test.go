package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	apperrors "github.com/opolancoh/employee-permissions/internal/shared/errors"
)

var (
	bobID     = uuid.MustParse("c9bf9e57-1685-4c89-bafb-ff5af830be8a")
	medicalID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
)

func TestListPermissionsUseCase_Execute_ReturnsStoreProjection(t *testing.T) {
	f := newFixture()
	f.uow.permissions.ListGroupedByEmployeeFunc = func(context.Context) ([]permission.EmployeePermissions, error) {
		return []permission.EmployeePermissions{
			{EmployeeID: aliceID, EmployeeName: "Alice", Permissions: []permission.PermissionTypeSummary{
				{ID: vacationID, Name: "Vacation"},
			}},
			{EmployeeID: bobID, EmployeeName: "Bob", Permissions: []permission.PermissionTypeSummary{
				{ID: medicalID, Name: "Medical"},
				{ID: vacationID, Name: "Vacation"},
			}},
		}, nil
	}
	// index content never reaches the response
	f.index.ListAllFunc = func(context.Context) ([]permission.IndexedPermission, error) {
		return []permission.IndexedPermission{{EmployeeID: "stale"}}, nil
	}

	uc := NewListPermissionsUseCase(f.factory, f.publisher, f.index, f.log)
	result, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, aliceID.String(), result[0].EmployeeID)
	assert.Equal(t, "Alice", result[0].EmployeeName)
	assert.Equal(t, vacationID.String(), result[0].Permissions[0].ID)
	assert.Len(t, result[1].Permissions, 2)

	assert.Equal(t, []string{"publish", "index.list"}, f.calls.list())
	assert.Equal(t, []events.OperationKind{events.OperationGet}, f.publisher.kinds)
	assert.Contains(t, f.log.messages, "Permissions successfully fetched from the database.")
}

func TestListPermissionsUseCase_Execute_EmptyIsNotNil(t *testing.T) {
	f := newFixture()

	result, err := NewListPermissionsUseCase(f.factory, f.publisher, f.index, f.log).Execute(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestListPermissionsUseCase_Execute_Failures(t *testing.T) {
	storeErr := apperrors.NewStorageError("failed to list permissions", errors.New("timeout"))
	publishErr := apperrors.NewPublishError("failed to publish operation event", errors.New("broker down"))
	indexErr := apperrors.NewIndexError("failed to search permissions", errors.New("cluster red"))

	tests := []struct {
		name      string
		setup     func(f *fixture)
		wantErr   error
		wantCalls []string
	}{
		{
			name: "store failure",
			setup: func(f *fixture) {
				f.uow.permissions.ListGroupedByEmployeeFunc = func(context.Context) ([]permission.EmployeePermissions, error) {
					return nil, storeErr
				}
			},
			wantErr: storeErr,
		},
		{
			name: "publish failure skips index read",
			setup: func(f *fixture) {
				f.publisher.PublishOperationFunc = func(context.Context, uuid.UUID, events.OperationKind) error { return publishErr }
			},
			wantErr:   publishErr,
			wantCalls: []string{"publish"},
		},
		{
			name: "index read failure propagates",
			setup: func(f *fixture) {
				f.index.ListAllFunc = func(context.Context) ([]permission.IndexedPermission, error) { return nil, indexErr }
			},
			wantErr:   indexErr,
			wantCalls: []string{"publish", "index.list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			result, err := NewListPermissionsUseCase(f.factory, f.publisher, f.index, f.log).Execute(context.Background())

			assert.Nil(t, result)
			assert.Same(t, tt.wantErr, err)
			if tt.wantCalls == nil {
				assert.Empty(t, f.calls.list())
			} else {
				assert.Equal(t, tt.wantCalls, f.calls.list())
			}
		})
	}
}

func TestListReferenceDataUseCases(t *testing.T) {
	f := newFixture()
	f.uow.employees.ListFunc = func(context.Context) ([]*permission.Employee, error) {
		return []*permission.Employee{permission.ReconstructEmployee(aliceID, "Alice")}, nil
	}
	f.uow.permissionTypes.ListFunc = func(context.Context) ([]*permission.PermissionType, error) {
		return []*permission.PermissionType{permission.ReconstructPermissionType(medicalID, "Medical", nil)}, nil
	}

	employees, err := NewListEmployeesUseCase(f.factory, f.log).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Alice", employees[0].Name)

	types, err := NewListPermissionTypesUseCase(f.factory, f.log).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, medicalID.String(), types[0].ID)
	assert.Nil(t, types[0].Description)

	assert.Empty(t, f.calls.list(), "reference reads publish nothing")
}
