package permission

import (
	"time"

	"github.com/google/uuid"
)

// EmployeePermissions is the read projection: one employee and the permission types they hold.
type EmployeePermissions struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	Permissions  []PermissionTypeSummary
}

type PermissionTypeSummary struct {
	ID   uuid.UUID
	Name string
}

// IndexedPermission is the flat search document of a grant.
type IndexedPermission struct {
	EmployeeID       string    `json:"employeeId"`
	PermissionTypeID string    `json:"permissionTypeId"`
	GrantedDate      time.Time `json:"grantedDate"`
	Description      string    `json:"description"`
}

func NewIndexedPermission(p *Permission) IndexedPermission {
	return IndexedPermission{
		EmployeeID:       p.EmployeeID().String(),
		PermissionTypeID: p.PermissionTypeID().String(),
		GrantedDate:      p.GrantedDate(),
		Description:      p.DescriptionOrEmpty(),
	}
}
