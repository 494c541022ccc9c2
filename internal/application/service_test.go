package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/bnema/employee-pairs-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServiceFindLongestPair(t *testing.T) {
	source := mocks.NewMockRecordSource(t)
	service := NewService(source, nil)

	source.EXPECT().Load(mockAnyContext()).Return([]domain.WorkPeriod{
		period(1, 10, "2024-01-01", "2024-01-03"),
		period(2, 10, "2024-01-01", "2024-01-10"),
		period(2, 20, "2024-03-01", "2024-03-05"),
		period(1, 20, "2024-02-01", "2024-03-31"),
		period(3, 20, "2024-03-05", "2024-03-06"),
	}, nil)

	report, err := service.FindLongestPair(context.Background(), AnalyzeOptions{})
	require.NoError(t, err)
	require.True(t, report.Found())
	assert.Equal(t, domain.ResultPair{Employee1ID: 1, Employee2ID: 2, TotalDaysWorkedTogether: 8}, *report.Longest)
	assert.Equal(t, []domain.ProjectOverlap{
		{Pair: domain.NewPairKey(1, 2), ProjectID: 10, Days: 3},
		{Pair: domain.NewPairKey(1, 2), ProjectID: 20, Days: 5},
	}, report.Breakdown)
	assert.Equal(t, 5, report.Records)
	assert.Equal(t, 2, report.Projects)
	assert.Equal(t, 3, report.Pairs)
}

func TestServiceFindLongestPairParallel(t *testing.T) {
	source := mocks.NewMockRecordSource(t)
	service := NewService(source, nil)

	source.EXPECT().Load(mockAnyContext()).Return(sampleWorkPeriods(), nil)

	report, err := service.FindLongestPair(context.Background(), AnalyzeOptions{Parallel: true, Workers: 4})
	require.NoError(t, err)

	want, ok := SelectLongest(Aggregate(sampleWorkPeriods()))
	require.True(t, ok)
	require.True(t, report.Found())
	assert.Equal(t, want, *report.Longest)
}

func TestServiceFindLongestPairWithoutOverlap(t *testing.T) {
	source := mocks.NewMockRecordSource(t)
	service := NewService(source, nil)

	source.EXPECT().Load(mockAnyContext()).Return([]domain.WorkPeriod{
		period(1, 10, "2024-01-01", "2024-01-05"),
		period(2, 10, "2024-01-10", "2024-01-15"),
	}, nil)

	report, err := service.FindLongestPair(context.Background(), AnalyzeOptions{})
	require.NoError(t, err)
	assert.False(t, report.Found())
	assert.Nil(t, report.Breakdown)
	assert.Equal(t, 2, report.Records)
	assert.Equal(t, 0, report.Pairs)
}

func TestServiceFindLongestPairWrapsSourceError(t *testing.T) {
	source := mocks.NewMockRecordSource(t)
	service := NewService(source, nil)

	loadErr := errors.New("disk on fire")
	source.EXPECT().Load(mockAnyContext()).Return(nil, loadErr)

	_, err := service.FindLongestPair(context.Background(), AnalyzeOptions{})
	require.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "load work periods")
}

func TestServiceRankPairsAppliesLimit(t *testing.T) {
	source := mocks.NewMockRecordSource(t)
	service := NewService(source, nil)

	source.EXPECT().Load(mockAnyContext()).Return([]domain.WorkPeriod{
		period(1, 10, "2024-01-01", "2024-01-10"),
		period(2, 10, "2024-01-05", "2024-01-20"),
		period(3, 10, "2024-01-08", "2024-01-09"),
	}, nil).Times(2)

	ranked, err := service.RankPairs(context.Background(), AnalyzeOptions{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []domain.ResultPair{
		{Employee1ID: 1, Employee2ID: 2, TotalDaysWorkedTogether: 6},
		{Employee1ID: 1, Employee2ID: 3, TotalDaysWorkedTogether: 2},
	}, ranked)

	all, err := service.RankPairs(context.Background(), AnalyzeOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestServiceRankPairsWrapsSourceError(t *testing.T) {
	source := mocks.NewMockRecordSource(t)
	service := NewService(source, nil)

	source.EXPECT().Load(mockAnyContext()).Return(nil, domain.ErrUnsupportedFormat)

	_, err := service.RankPairs(context.Background(), AnalyzeOptions{})
	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestServiceReportsLoadedRecordsBeforeAggregating(t *testing.T) {
	source := mocks.NewMockRecordSource(t)
	service := NewService(source, nil)

	source.EXPECT().Load(mockAnyContext()).Return([]domain.WorkPeriod{
		period(1, 10, "2024-01-01", "2024-01-10"),
		period(2, 10, "2024-01-05", "2024-01-20"),
		period(3, 20, "2024-01-08", "2024-01-09"),
	}, nil).Times(2)

	var calls [][2]int
	opts := AnalyzeOptions{OnLoaded: func(records, projects int) {
		calls = append(calls, [2]int{records, projects})
	}}

	_, err := service.FindLongestPair(context.Background(), opts)
	require.NoError(t, err)
	_, err = service.RankPairs(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{3, 2}, {3, 2}}, calls)
}

func TestServiceSkipsLoadedCallbackOnSourceError(t *testing.T) {
	source := mocks.NewMockRecordSource(t)
	service := NewService(source, nil)

	source.EXPECT().Load(mockAnyContext()).Return(nil, errors.New("missing"))

	called := false
	_, err := service.FindLongestPair(context.Background(), AnalyzeOptions{OnLoaded: func(int, int) {
		called = true
	}})
	require.Error(t, err)
	assert.False(t, called)
}

func mockAnyContext() interface{} {
	return mock.Anything
}
