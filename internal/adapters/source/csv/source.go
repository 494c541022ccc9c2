package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/bnema/employee-pairs-cli/internal/adapters/source/dates"
	"github.com/bnema/employee-pairs-cli/internal/adapters/source/records"
	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/bnema/employee-pairs-cli/internal/ports"
)

const minFields = 4

// Source reads "EmpID, ProjectID, DateFrom, DateTo" rows. The first row is a
// header and is always skipped.
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

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer file.Close()

	return s.Decode(ctx, file)
}

// Decode parses CSV content from r.
func (s *Source) Decode(ctx context.Context, r io.Reader) ([]domain.WorkPeriod, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	builder := records.NewBuilder(s.dates, s.logger)

	header := true
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				header = false
				builder.Skip(parseErr.Line, parseErr.Err.Error())
				continue
			}
			return nil, fmt.Errorf("read records file: %w", err)
		}

		if header {
			header = false
			continue
		}

		line, _ := reader.FieldPos(0)
		row, reason, ok := toRow(line, fields)
		if !ok {
			builder.Skip(line, reason)
			continue
		}

		builder.Add(row)
	}

	return builder.Periods(), nil
}

func toRow(line int, fields []string) (records.Row, string, bool) {
	if isBlank(fields) {
		return records.Row{}, "blank line", false
	}
	if len(fields) < minFields {
		return records.Row{}, "too few fields", false
	}

	employeeID, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return records.Row{}, "unreadable employee id", false
	}

	projectID, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return records.Row{}, "unreadable project id", false
	}

	return records.Row{
		Line:       line,
		EmployeeID: employeeID,
		ProjectID:  projectID,
		DateFrom:   fields[2],
		DateTo:     fields[3],
	}, "", true
}

func isBlank(fields []string) bool {
	for _, field := range fields {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
