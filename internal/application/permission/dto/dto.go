package dto

import (
	"github.com/opolancoh/employee-permissions/internal/domain/permission"
)

// EmployeePermissionsDTO is one entry of GET /api/permissions.
type EmployeePermissionsDTO struct {
	EmployeeID   string                 `json:"employeeId"`
	EmployeeName string                 `json:"employeeName"`
	Permissions  []PermissionTypeRefDTO `json:"permissions"`
}

type PermissionTypeRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PermissionTypeDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ToEmployeePermissionsDTOs never returns nil so the response encodes as [].
func ToEmployeePermissionsDTOs(items []permission.EmployeePermissions) []EmployeePermissionsDTO {
	result := make([]EmployeePermissionsDTO, 0, len(items))
	for _, item := range items {
		refs := make([]PermissionTypeRefDTO, 0, len(item.Permissions))
		for _, p := range item.Permissions {
			refs = append(refs, PermissionTypeRefDTO{
				ID:   p.ID.String(),
				Name: p.Name,
			})
		}
		result = append(result, EmployeePermissionsDTO{
			EmployeeID:   item.EmployeeID.String(),
			EmployeeName: item.EmployeeName,
			Permissions:  refs,
		})
	}
	return result
}

func ToEmployeeDTOs(employees []*permission.Employee) []EmployeeDTO {
	result := make([]EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		result = append(result, EmployeeDTO{ID: e.ID().String(), Name: e.Name()})
	}
	return result
}

func ToPermissionTypeDTOs(types []*permission.PermissionType) []PermissionTypeDTO {
	result := make([]PermissionTypeDTO, 0, len(types))
	for _, t := range types {
		result = append(result, PermissionTypeDTO{
			ID:          t.ID().String(),
			Name:        t.Name(),
			Description: t.Description(),
		})
	}
	return result
}
