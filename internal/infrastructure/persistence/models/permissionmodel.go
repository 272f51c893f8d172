package models

import (
	"time"

	"github.com/opolancoh/employee-permissions/internal/shared/constants"
)

type EmployeeModel struct {
	ID   string `gorm:"primaryKey;type:char(36)"`
	Name string `gorm:"size:100;not null"`
}

func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}

type PermissionTypeModel struct {
	ID          string  `gorm:"primaryKey;type:char(36)"`
	Name        string  `gorm:"size:50;not null"`
	Description *string `gorm:"size:200"`
}

func (PermissionTypeModel) TableName() string {
	return constants.TablePermissionTypes
}

// PermissionModel is keyed by (employee_id, permission_type_id). Deleting an
// employee cascades to its grants.
type PermissionModel struct {
	EmployeeID       string    `gorm:"primaryKey;type:char(36)"`
	PermissionTypeID string    `gorm:"primaryKey;type:char(36);index"`
	GrantedDate      time.Time `gorm:"not null"`
	Description      *string

	Employee       EmployeeModel       `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	PermissionType PermissionTypeModel `gorm:"foreignKey:PermissionTypeID"`
}

func (PermissionModel) TableName() string {
	return constants.TablePermissions
}

// AllModels lists every model in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&EmployeeModel{},
		&PermissionTypeModel{},
		&PermissionModel{},
	}
}
