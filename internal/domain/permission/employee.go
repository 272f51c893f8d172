package permission

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/shared/errors"
)

const (
	MaxEmployeeNameLength           = 100
	MaxPermissionTypeNameLength     = 50
	MaxPermissionTypeDescriptionLen = 200
)

// Employee is reference data: an identity and a display name.
type Employee struct {
	id   uuid.UUID
	name string
}

func NewEmployee(id uuid.UUID, name string) (*Employee, error) {
	if id == uuid.Nil {
		return nil, errors.NewValidationError("employee id is required")
	}
	if name == "" {
		return nil, errors.NewValidationError("employee name is required")
	}
	if utf8.RuneCountInString(name) > MaxEmployeeNameLength {
		return nil, errors.NewValidationError("employee name exceeds maximum length of 100 characters")
	}
	return &Employee{id: id, name: name}, nil
}

// ReconstructEmployee rebuilds an Employee from storage without validation.
func ReconstructEmployee(id uuid.UUID, name string) *Employee {
	return &Employee{id: id, name: name}
}

func (e *Employee) ID() uuid.UUID { return e.id }

func (e *Employee) Name() string { return e.name }

// PermissionType is reference data describing a kind of grant.
type PermissionType struct {
	id          uuid.UUID
	name        string
	description *string
}

func NewPermissionType(id uuid.UUID, name string, description *string) (*PermissionType, error) {
	if id == uuid.Nil {
		return nil, errors.NewValidationError("permission type id is required")
	}
	if name == "" {
		return nil, errors.NewValidationError("permission type name is required")
	}
	if utf8.RuneCountInString(name) > MaxPermissionTypeNameLength {
		return nil, errors.NewValidationError("permission type name exceeds maximum length of 50 characters")
	}
	if description != nil && utf8.RuneCountInString(*description) > MaxPermissionTypeDescriptionLen {
		return nil, errors.NewValidationError("permission type description exceeds maximum length of 200 characters")
	}
	return &PermissionType{id: id, name: name, description: description}, nil
}

func ReconstructPermissionType(id uuid.UUID, name string, description *string) *PermissionType {
	return &PermissionType{id: id, name: name, description: description}
}

func (t *PermissionType) ID() uuid.UUID { return t.id }

func (t *PermissionType) Name() string { return t.name }

func (t *PermissionType) Description() *string { return t.description }
