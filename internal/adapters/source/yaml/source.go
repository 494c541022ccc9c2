package yaml

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bnema/employee-pairs-cli/internal/adapters/source/dates"
	"github.com/bnema/employee-pairs-cli/internal/adapters/source/records"
	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/bnema/employee-pairs-cli/internal/ports"
	"gopkg.in/yaml.v3"
)

type Source struct {
	path   string
	dates  *dates.Parser
	logger *slog.Logger
}

var _ ports.RecordSource = (*Source)(nil)

func NewSource(path string, parser *dates.Parser, logger *slog.Logger) *Source {
	return &Source{path: path, dates: parser, logger: logger}
}

func (s *Source) Load(ctx context.Context) ([]domain.WorkPeriod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}

	var file fileSchema
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode records file: %w", err)
	}
	file.applyDefaults()
	if err := file.validateVersion(); err != nil {
		return nil, err
	}

	builder := records.NewBuilder(s.dates, s.logger)
	for i, entry := range file.Periods {
		builder.Add(records.Row{
			Line:       i + 1,
			EmployeeID: entry.EmployeeID,
			ProjectID:  entry.ProjectID,
			DateFrom:   entry.DateFrom,
			DateTo:     entry.DateTo,
		})
	}

	return builder.Periods(), nil
}
