package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/persistence/models"
	"github.com/opolancoh/employee-permissions/internal/shared/constants"
	"github.com/opolancoh/employee-permissions/internal/shared/errors"
)

// PermissionRepository reads grants directly and stages writes on its UnitOfWork.
type PermissionRepository struct {
	uow *UnitOfWork
}

func (r *PermissionRepository) Add(p *permission.Permission) {
	model := r.uow.mapper.ToModel(p)
	r.uow.stage("add permission "+p.Key().String(), func(tx *gorm.DB) (int64, error) {
		result := tx.Omit(clause.Associations).Create(model)
		return result.RowsAffected, result.Error
	})
}

// Update stages an overwrite of grantedDate and description. A key that matches
// no row fails SaveChanges with a not found error.
func (r *PermissionRepository) Update(p *permission.Permission) {
	model := r.uow.mapper.ToModel(p)
	key := p.Key().String()
	r.uow.stage("update permission "+key, func(tx *gorm.DB) (int64, error) {
		result := tx.Model(&models.PermissionModel{}).
			Where("employee_id = ? AND permission_type_id = ?", model.EmployeeID, model.PermissionTypeID).
			Updates(map[string]interface{}{
				"granted_date": model.GrantedDate,
				"description":  model.Description,
			})
		if result.Error != nil {
			return 0, result.Error
		}
		if result.RowsAffected == 0 {
			return 0, errors.NewNotFoundError("permission not found", key)
		}
		return result.RowsAffected, nil
	})
}

func (r *PermissionRepository) GetByKey(ctx context.Context, key permission.Key) (*permission.Permission, error) {
	var model models.PermissionModel

	err := r.uow.reader(ctx).
		Preload("Employee").
		Preload("PermissionType").
		Where("employee_id = ? AND permission_type_id = ?", key.EmployeeID.String(), key.PermissionTypeID.String()).
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.NewStorageError("failed to get permission", err)
	}

	p, err := r.uow.mapper.ToDomain(&model)
	if err != nil {
		return nil, errors.NewStorageError("failed to map permission", err)
	}
	return p, nil
}

type groupedPermissionRow struct {
	EmployeeID         string
	EmployeeName       string
	PermissionTypeID   string
	PermissionTypeName string
}

// ListGroupedByEmployee joins grants with their employee and type. Employees
// are ordered by name then id, their permission types by name then id.
func (r *PermissionRepository) ListGroupedByEmployee(ctx context.Context) ([]permission.EmployeePermissions, error) {
	var rows []groupedPermissionRow

	err := r.uow.reader(ctx).
		Table(constants.TablePermissions+" p").
		Select("e.id AS employee_id, e.name AS employee_name, t.id AS permission_type_id, t.name AS permission_type_name").
		Joins(fmt.Sprintf("JOIN %s e ON e.id = p.employee_id", constants.TableEmployees)).
		Joins(fmt.Sprintf("JOIN %s t ON t.id = p.permission_type_id", constants.TablePermissionTypes)).
		Order("e.name, e.id, t.name, t.id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewStorageError("failed to list permissions", err)
	}

	result := make([]permission.EmployeePermissions, 0)
	for _, row := range rows {
		employeeID, err := uuid.Parse(row.EmployeeID)
		if err != nil {
			return nil, errors.NewStorageError("invalid employee id in permissions", err)
		}
		typeID, err := uuid.Parse(row.PermissionTypeID)
		if err != nil {
			return nil, errors.NewStorageError("invalid permission type id in permissions", err)
		}

		if n := len(result); n == 0 || result[n-1].EmployeeID != employeeID {
			result = append(result, permission.EmployeePermissions{
				EmployeeID:   employeeID,
				EmployeeName: row.EmployeeName,
			})
		}
		last := &result[len(result)-1]
		last.Permissions = append(last.Permissions, permission.PermissionTypeSummary{
			ID:   typeID,
			Name: row.PermissionTypeName,
		})
	}

	return result, nil
}
