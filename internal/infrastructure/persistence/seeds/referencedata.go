package seeds

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

//go:embed referencedata.yaml
var defaultReferenceData []byte

// ReferenceData is the seed file layout.
type ReferenceData struct {
	Employees []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"employees"`
	PermissionTypes []struct {
		ID          string  `yaml:"id"`
		Name        string  `yaml:"name"`
		Description *string `yaml:"description"`
	} `yaml:"permission_types"`
}

// LoadReferenceData parses raw YAML, or the embedded defaults when raw is empty.
func LoadReferenceData(raw []byte) (*ReferenceData, error) {
	if len(raw) == 0 {
		raw = defaultReferenceData
	}
	var data ReferenceData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse reference data: %w", err)
	}
	return &data, nil
}

// SeedReferenceData inserts the employees and permission types that do not
// exist yet and returns how many rows were written. Grants are never seeded.
func SeedReferenceData(ctx context.Context, uow permission.UnitOfWork, data *ReferenceData, log logger.Interface) (int64, error) {
	for _, e := range data.Employees {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return 0, fmt.Errorf("invalid employee id %q: %w", e.ID, err)
		}
		existing, err := uow.Employees().GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		if existing != nil {
			continue
		}
		employee, err := permission.NewEmployee(id, e.Name)
		if err != nil {
			return 0, fmt.Errorf("employee %q: %w", e.Name, err)
		}
		uow.Employees().Add(employee)
	}

	for _, t := range data.PermissionTypes {
		id, err := uuid.Parse(t.ID)
		if err != nil {
			return 0, fmt.Errorf("invalid permission type id %q: %w", t.ID, err)
		}
		existing, err := uow.PermissionTypes().GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		if existing != nil {
			continue
		}
		permissionType, err := permission.NewPermissionType(id, t.Name, t.Description)
		if err != nil {
			return 0, fmt.Errorf("permission type %q: %w", t.Name, err)
		}
		uow.PermissionTypes().Add(permissionType)
	}

	affected, err := uow.SaveChanges(ctx)
	if err != nil {
		return 0, err
	}

	log.Infow("reference data seeded", "rows", affected)
	return affected, nil
}
