package toml

import (
	"fmt"
	"time"

	"github.com/bnema/employee-pairs-cli/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	currentSchemaVersion = 1
	dateLayout           = "2006-01-02"
)

type fileSchema struct {
	Version int            `toml:"version"`
	Periods []periodSchema `toml:"periods"`
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

// periodSchema keeps the dates untyped: TOML allows both quoted strings and
// native date values.
type periodSchema struct {
	EmployeeID int `toml:"employee_id"`
	ProjectID  int `toml:"project_id"`
	DateFrom   any `toml:"date_from"`
	DateTo     any `toml:"date_to,omitempty"`
}

// dateText turns a decoded date field into the text the date parser reads.
// A missing field yields "".
func dateText(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case toml.LocalDate:
		return v.String(), nil
	case toml.LocalDateTime:
		return v.LocalDate.String(), nil
	case time.Time:
		return v.Format(dateLayout), nil
	default:
		return "", fmt.Errorf("unsupported date value %v of type %T", value, value)
	}
}
