package mappers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/persistence/models"
)

// PermissionMapper handles the conversion between permission domain entities and persistence models.
type PermissionMapper interface {
	ToModel(p *permission.Permission) *models.PermissionModel
	// ToDomain converts a grant; relations are attached when the model has them preloaded.
	ToDomain(model *models.PermissionModel) (*permission.Permission, error)

	EmployeeToModel(e *permission.Employee) *models.EmployeeModel
	EmployeeToDomain(model *models.EmployeeModel) (*permission.Employee, error)

	PermissionTypeToModel(t *permission.PermissionType) *models.PermissionTypeModel
	PermissionTypeToDomain(model *models.PermissionTypeModel) (*permission.PermissionType, error)
}

// PermissionMapperImpl is the concrete implementation of PermissionMapper.
type PermissionMapperImpl struct{}

// NewPermissionMapper creates a new PermissionMapper.
func NewPermissionMapper() PermissionMapper {
	return &PermissionMapperImpl{}
}

func (m *PermissionMapperImpl) ToModel(p *permission.Permission) *models.PermissionModel {
	return &models.PermissionModel{
		EmployeeID:       p.EmployeeID().String(),
		PermissionTypeID: p.PermissionTypeID().String(),
		GrantedDate:      p.GrantedDate().UTC(),
		Description:      p.Description(),
	}
}

func (m *PermissionMapperImpl) ToDomain(model *models.PermissionModel) (*permission.Permission, error) {
	if model == nil {
		return nil, nil
	}

	employeeID, err := uuid.Parse(model.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id %q: %w", model.EmployeeID, err)
	}
	permissionTypeID, err := uuid.Parse(model.PermissionTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid permission type id %q: %w", model.PermissionTypeID, err)
	}

	var employee *permission.Employee
	if model.Employee.ID != "" {
		if employee, err = m.EmployeeToDomain(&model.Employee); err != nil {
			return nil, err
		}
	}

	var permissionType *permission.PermissionType
	if model.PermissionType.ID != "" {
		if permissionType, err = m.PermissionTypeToDomain(&model.PermissionType); err != nil {
			return nil, err
		}
	}

	return permission.ReconstructPermission(
		permission.Key{EmployeeID: employeeID, PermissionTypeID: permissionTypeID},
		model.GrantedDate.UTC(),
		model.Description,
		employee,
		permissionType,
	), nil
}

func (m *PermissionMapperImpl) EmployeeToModel(e *permission.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:   e.ID().String(),
		Name: e.Name(),
	}
}

func (m *PermissionMapperImpl) EmployeeToDomain(model *models.EmployeeModel) (*permission.Employee, error) {
	if model == nil {
		return nil, nil
	}
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id %q: %w", model.ID, err)
	}
	return permission.ReconstructEmployee(id, model.Name), nil
}

func (m *PermissionMapperImpl) PermissionTypeToModel(t *permission.PermissionType) *models.PermissionTypeModel {
	return &models.PermissionTypeModel{
		ID:          t.ID().String(),
		Name:        t.Name(),
		Description: t.Description(),
	}
}

func (m *PermissionMapperImpl) PermissionTypeToDomain(model *models.PermissionTypeModel) (*permission.PermissionType, error) {
	if model == nil {
		return nil, nil
	}
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid permission type id %q: %w", model.ID, err)
	}
	return permission.ReconstructPermissionType(id, model.Name, model.Description), nil
}
