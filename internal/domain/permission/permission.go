package permission

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/shared/errors"
)

// Key identifies a grant. An employee holds a permission type at most once.
type Key struct {
	EmployeeID       uuid.UUID
	PermissionTypeID uuid.UUID
}

func (k Key) Validate() error {
	if k.EmployeeID == uuid.Nil {
		return errors.NewValidationError("employee id is required")
	}
	if k.PermissionTypeID == uuid.Nil {
		return errors.NewValidationError("permission type id is required")
	}
	return nil
}

// DocumentID is the search index id for the grant: "{employeeId}_{permissionTypeId}".
func (k Key) DocumentID() string {
	return fmt.Sprintf("%s_%s", k.EmployeeID, k.PermissionTypeID)
}

func (k Key) String() string {
	return k.DocumentID()
}

// Permission is a grant: this employee holds this permission type as of grantedDate.
type Permission struct {
	key            Key
	grantedDate    time.Time
	description    *string
	employee       *Employee
	permissionType *PermissionType
}

func NewPermission(key Key, grantedDate time.Time, description *string) (*Permission, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if grantedDate.IsZero() {
		return nil, errors.NewValidationError("granted date is required")
	}
	return &Permission{
		key:         key,
		grantedDate: grantedDate,
		description: description,
	}, nil
}

// ReconstructPermission rebuilds a grant from storage. employee and permissionType may be nil
// when the caller did not load the relations.
func ReconstructPermission(key Key, grantedDate time.Time, description *string, employee *Employee, permissionType *PermissionType) *Permission {
	return &Permission{
		key:            key,
		grantedDate:    grantedDate,
		description:    description,
		employee:       employee,
		permissionType: permissionType,
	}
}

// Amend overwrites the mutable attributes. The key never changes.
func (p *Permission) Amend(grantedDate time.Time, description *string) error {
	if grantedDate.IsZero() {
		return errors.NewValidationError("granted date is required")
	}
	p.grantedDate = grantedDate
	p.description = description
	return nil
}

func (p *Permission) Key() Key { return p.key }

func (p *Permission) EmployeeID() uuid.UUID { return p.key.EmployeeID }

func (p *Permission) PermissionTypeID() uuid.UUID { return p.key.PermissionTypeID }

func (p *Permission) GrantedDate() time.Time { return p.grantedDate }

func (p *Permission) Description() *string { return p.description }

// DescriptionOrEmpty returns the description, or "" when absent.
func (p *Permission) DescriptionOrEmpty() string {
	if p.description == nil {
		return ""
	}
	return *p.description
}

func (p *Permission) Employee() *Employee { return p.employee }

func (p *Permission) PermissionType() *PermissionType { return p.permissionType }
