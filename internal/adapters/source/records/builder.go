package records

import (
	"io"
	"log/slog"

	"github.com/bnema/employee-pairs-cli/internal/adapters/source/dates"
	"github.com/bnema/employee-pairs-cli/internal/domain"
)

// Row is one decoded input line before its dates are interpreted.
type Row struct {
	Line       int
	EmployeeID int
	ProjectID  int
	DateFrom   string
	DateTo     string
}

type periodKey struct {
	employee domain.EmployeeID
	project  domain.ProjectID
	start    int64
	end      int64
}

// Builder turns rows into work periods, dropping the rows the aggregation
// must never see: unreadable start dates, end dates before the start, and
// exact duplicates.
type Builder struct {
	dates   *dates.Parser
	logger  *slog.Logger
	seen    map[periodKey]struct{}
	periods []domain.WorkPeriod
}

func NewBuilder(parser *dates.Parser, logger *slog.Logger) *Builder {
	if parser == nil {
		parser = dates.NewParser(nil, nil)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Builder{
		dates:   parser,
		logger:  logger,
		seen:    map[periodKey]struct{}{},
		periods: []domain.WorkPeriod{},
	}
}

func (b *Builder) Add(row Row) bool {
	start, ok := b.dates.Parse(row.DateFrom)
	if !ok {
		b.Skip(row.Line, "unreadable start date")
		return false
	}
	end := b.dates.ParseEnd(row.DateTo)

	if end.Before(start) {
		b.logger.Warn("skipping record ending before it starts",
			slog.Int("line", row.Line),
			slog.String("from", row.DateFrom),
			slog.String("to", row.DateTo),
		)
		return false
	}

	period := domain.WorkPeriod{
		EmployeeID: domain.EmployeeID(row.EmployeeID),
		ProjectID:  domain.ProjectID(row.ProjectID),
		Start:      start,
		End:        end,
	}

	key := periodKey{
		employee: period.EmployeeID,
		project:  period.ProjectID,
		start:    start.Unix(),
		end:      end.Unix(),
	}
	if _, dup := b.seen[key]; dup {
		b.logger.Debug("skipping duplicate record", slog.Int("line", row.Line))
		return false
	}
	b.seen[key] = struct{}{}

	b.periods = append(b.periods, period)
	return true
}

// Skip records a row dropped by the caller before it could become a Row.
func (b *Builder) Skip(line int, reason string) {
	b.logger.Debug("skipping record", slog.Int("line", line), slog.String("reason", reason))
}

func (b *Builder) Periods() []domain.WorkPeriod {
	return b.periods
}
