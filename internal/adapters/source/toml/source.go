package toml

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bnema/employee-pairs-cli/internal/adapters/source/dates"
	"github.com/bnema/employee-pairs-cli/internal/adapters/source/records"
	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/bnema/employee-pairs-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

// Source reads work periods from a versioned TOML document:
//
//	version = 1
//
//	[[periods]]
//	employee_id = 143
//	project_id = 12
//	date_from = "2013-11-01"
//	date_to = 2014-01-05
//
// Dates may be quoted text in any accepted layout or native TOML dates.
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
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode records file: %w", err)
	}
	file.applyDefaults()
	if err := file.validateVersion(); err != nil {
		return nil, err
	}

	rows := make([]records.Row, 0, len(file.Periods))
	for i, entry := range file.Periods {
		from, err := dateText(entry.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("decode records file: period %d date_from: %w", i+1, err)
		}
		to, err := dateText(entry.DateTo)
		if err != nil {
			return nil, fmt.Errorf("decode records file: period %d date_to: %w", i+1, err)
		}

		rows = append(rows, records.Row{
			Line:       i + 1,
			EmployeeID: entry.EmployeeID,
			ProjectID:  entry.ProjectID,
			DateFrom:   from,
			DateTo:     to,
		})
	}

	builder := records.NewBuilder(s.dates, s.logger)
	for _, row := range rows {
		builder.Add(row)
	}

	return builder.Periods(), nil
}
