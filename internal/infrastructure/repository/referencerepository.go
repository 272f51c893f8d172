package repository

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/persistence/models"
	"github.com/opolancoh/employee-permissions/internal/shared/errors"
)

type EmployeeRepository struct {
	uow *UnitOfWork
}

func (r *EmployeeRepository) Add(e *permission.Employee) {
	model := r.uow.mapper.EmployeeToModel(e)
	r.uow.stage("add employee "+model.ID, func(tx *gorm.DB) (int64, error) {
		result := tx.Omit(clause.Associations).Create(model)
		return result.RowsAffected, result.Error
	})
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*permission.Employee, error) {
	var model models.EmployeeModel
	if err := r.uow.reader(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.NewStorageError("failed to get employee", err)
	}
	e, err := r.uow.mapper.EmployeeToDomain(&model)
	if err != nil {
		return nil, errors.NewStorageError("failed to map employee", err)
	}
	return e, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]*permission.Employee, error) {
	var rows []models.EmployeeModel
	if err := r.uow.reader(ctx).Order("name, id").Find(&rows).Error; err != nil {
		return nil, errors.NewStorageError("failed to list employees", err)
	}

	result := make([]*permission.Employee, 0, len(rows))
	for i := range rows {
		e, err := r.uow.mapper.EmployeeToDomain(&rows[i])
		if err != nil {
			return nil, errors.NewStorageError("failed to map employee", err)
		}
		result = append(result, e)
	}
	return result, nil
}

type PermissionTypeRepository struct {
	uow *UnitOfWork
}

func (r *PermissionTypeRepository) Add(t *permission.PermissionType) {
	model := r.uow.mapper.PermissionTypeToModel(t)
	r.uow.stage("add permission type "+model.ID, func(tx *gorm.DB) (int64, error) {
		result := tx.Omit(clause.Associations).Create(model)
		return result.RowsAffected, result.Error
	})
}

func (r *PermissionTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*permission.PermissionType, error) {
	var model models.PermissionTypeModel
	if err := r.uow.reader(ctx).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.NewStorageError("failed to get permission type", err)
	}
	t, err := r.uow.mapper.PermissionTypeToDomain(&model)
	if err != nil {
		return nil, errors.NewStorageError("failed to map permission type", err)
	}
	return t, nil
}

func (r *PermissionTypeRepository) List(ctx context.Context) ([]*permission.PermissionType, error) {
	var rows []models.PermissionTypeModel
	if err := r.uow.reader(ctx).Order("name, id").Find(&rows).Error; err != nil {
		return nil, errors.NewStorageError("failed to list permission types", err)
	}

	result := make([]*permission.PermissionType, 0, len(rows))
	for i := range rows {
		t, err := r.uow.mapper.PermissionTypeToDomain(&rows[i])
		if err != nil {
			return nil, errors.NewStorageError("failed to map permission type", err)
		}
		result = append(result, t)
	}
	return result, nil
}
