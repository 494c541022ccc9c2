package yaml

import (
	"fmt"

	"github.com/bnema/employee-pairs-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `yaml:"version"`
	Periods []periodSchema `yaml:"periods"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version < 1 || s.Version > currentSchemaVersion {
		return fmt.Errorf("%w %d (current %d)", domain.ErrUnsupportedSchemaVersion, s.Version, currentSchemaVersion)
	}

	return nil
}

type periodSchema struct {
	EmployeeID int    `yaml:"employee_id"`
	ProjectID  int    `yaml:"project_id"`
	DateFrom   string `yaml:"date_from"`
	DateTo     string `yaml:"date_to,omitempty"`
}
