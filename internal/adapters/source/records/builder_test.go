package records

import (
	"testing"
	"time"

	"github.com/bnema/employee-pairs-cli/internal/adapters/source/dates"
	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/bnema/employee-pairs-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
)

func TestBuilderAdd(t *testing.T) {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC))
	builder := NewBuilder(dates.NewParser(nil, clock), nil)

	assert.True(t, builder.Add(Row{Line: 2, EmployeeID: 143, ProjectID: 12, DateFrom: "2013-11-01", DateTo: "2014-01-05"}))
	assert.True(t, builder.Add(Row{Line: 3, EmployeeID: 218, ProjectID: 10, DateFrom: "2012-05-16", DateTo: "NULL"}))
	assert.False(t, builder.Add(Row{Line: 4, EmployeeID: 143, ProjectID: 12, DateFrom: "2013-11-01", DateTo: "2014-01-05"}), "duplicate")
	assert.False(t, builder.Add(Row{Line: 5, EmployeeID: 7, ProjectID: 1, DateFrom: "someday", DateTo: "2014-01-05"}), "bad start")
	assert.False(t, builder.Add(Row{Line: 6, EmployeeID: 7, ProjectID: 1, DateFrom: "2014-02-01", DateTo: "2014-01-05"}), "end before start")

	assert.Equal(t, []domain.WorkPeriod{
		{
			EmployeeID: 143,
			ProjectID:  12,
			Start:      time.Date(2013, 11, 1, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2014, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			EmployeeID: 218,
			ProjectID:  10,
			Start:      time.Date(2012, 5, 16, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		},
	}, builder.Periods())
}

func TestBuilderPeriodsEmpty(t *testing.T) {
	t.Parallel()

	builder := NewBuilder(nil, nil)
	assert.NotNil(t, builder.Periods())
	assert.Empty(t, builder.Periods())
}
