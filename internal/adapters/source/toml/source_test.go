package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/employee-pairs-cli/internal/adapters/source/dates"
	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/bnema/employee-pairs-cli/internal/ports/mocks"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRecords(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "records.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600))
	return path
}

func TestSourceLoad(t *testing.T) {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC))

	path := writeRecords(t,
		"version = 1",
		"",
		"[[periods]]",
		"employee_id = 143",
		"project_id = 12",
		"date_from = \"2013-11-01\"",
		"date_to = \"2014-01-05\"",
		"",
		"[[periods]]",
		"employee_id = 218",
		"project_id = 12",
		"date_from = \"12/01/2013\"",
		"",
		"[[periods]]",
		"employee_id = 219",
		"project_id = 12",
		"date_from = \"not a date\"",
	)

	got, err := NewSource(path, dates.NewParser(nil, clock), nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.WorkPeriod{
		{
			EmployeeID: 143,
			ProjectID:  12,
			Start:      time.Date(2013, 11, 1, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2014, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			EmployeeID: 218,
			ProjectID:  12,
			Start:      time.Date(2013, 12, 1, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		},
	}, got)
}

func TestSourceLoadMissingVersionDefaults(t *testing.T) {
	t.Parallel()

	path := writeRecords(t,
		"[[periods]]",
		"employee_id = 1",
		"project_id = 2",
		"date_from = \"2020-01-01\"",
		"date_to = \"2020-01-02\"",
	)

	got, err := NewSource(path, nil, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSourceLoadRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	path := writeRecords(t, "version = 2")

	_, err := NewSource(path, nil, nil).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrUnsupportedSchemaVersion)
	assert.Contains(t, err.Error(), "2 (current 1)")
}

func TestSourceLoadInvalidDocument(t *testing.T) {
	t.Parallel()

	path := writeRecords(t, "[[periods]", "employee_id = ")

	_, err := NewSource(path, nil, nil).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode records file")
}

func TestSourceLoadNativeDates(t *testing.T) {
	t.Parallel()

	path := writeRecords(t,
		"[[periods]]",
		"employee_id = 1",
		"project_id = 10",
		"date_from = 2020-01-01",
		"date_to = 2020-01-05",
		"",
		"[[periods]]",
		"employee_id = 2",
		"project_id = 10",
		"date_from = 2020-01-03T08:30:00",
		"date_to = 2020-01-09T17:00:00+02:00",
	)

	got, err := NewSource(path, nil, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.WorkPeriod{
		{
			EmployeeID: 1,
			ProjectID:  10,
			Start:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2020, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			EmployeeID: 2,
			ProjectID:  10,
			Start:      time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2020, 1, 9, 0, 0, 0, 0, time.UTC),
		},
	}, got)
}

func TestSourceLoadRejectsNonDateValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		field string
	}{
		{name: "integer", value: "date_from = 20200101", field: "date_from"},
		{name: "local time", value: "date_to = 07:32:00", field: "date_to"},
		{name: "array", value: "date_from = [2020-01-01]", field: "date_from"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lines := []string{"[[periods]]", "employee_id = 1", "project_id = 10"}
			if tc.field == "date_to" {
				lines = append(lines, "date_from = 2020-01-01")
			}
			path := writeRecords(t, append(lines, tc.value)...)

			_, err := NewSource(path, nil, nil).Load(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "decode records file: period 1 "+tc.field)
		})
	}
}

func TestSourceLoadRejectsNegativeSchemaVersion(t *testing.T) {
	t.Parallel()

	path := writeRecords(t, "version = -1")

	_, err := NewSource(path, nil, nil).Load(context.Background())
	require.ErrorIs(t, err, domain.ErrUnsupportedSchemaVersion)
	assert.Contains(t, err.Error(), "-1 (current 1)")
}

func TestDateText(t *testing.T) {
	t.Parallel()

	text, err := dateText(nil)
	require.NoError(t, err)
	assert.Empty(t, text)

	text, err = dateText(" 01.11.2013 ")
	require.NoError(t, err)
	assert.Equal(t, " 01.11.2013 ", text)

	text, err = dateText(toml.LocalDate{Year: 2013, Month: 11, Day: 1})
	require.NoError(t, err)
	assert.Equal(t, "2013-11-01", text)

	text, err = dateText(toml.LocalDateTime{
		LocalDate: toml.LocalDate{Year: 2013, Month: 11, Day: 1},
		LocalTime: toml.LocalTime{Hour: 23, Minute: 59},
	})
	require.NoError(t, err)
	assert.Equal(t, "2013-11-01", text)

	text, err = dateText(time.Date(2013, 11, 1, 23, 0, 0, 0, time.FixedZone("CET", 3600)))
	require.NoError(t, err)
	assert.Equal(t, "2013-11-01", text)

	_, err = dateText(int64(3))
	require.Error(t, err)
}
