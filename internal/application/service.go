package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/employee-pairs-cli/internal/domain"
	"github.com/bnema/employee-pairs-cli/internal/ports"
)

type Service struct {
	source ports.RecordSource
	logger *slog.Logger
}

func NewService(source ports.RecordSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{source: source, logger: logger}
}

func (s *Service) FindLongestPair(ctx context.Context, opts AnalyzeOptions) (Report, error) {
	periods, err := s.load(ctx, opts)
	if err != nil {
		return Report{}, err
	}

	totals, err := s.aggregate(ctx, periods, opts)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Records:  len(periods),
		Projects: len(groupByProject(periods)),
		Pairs:    len(totals),
	}

	longest, ok := SelectLongest(totals)
	if !ok {
		s.logger.Info("no overlapping work periods", slog.Int("records", report.Records))
		return report, nil
	}

	report.Longest = &longest
	report.Breakdown = Breakdown(periods, longest.Key())

	s.logger.Info("longest pair selected",
		slog.Int("employee1", int(longest.Employee1ID)),
		slog.Int("employee2", int(longest.Employee2ID)),
		slog.Int("days", longest.TotalDaysWorkedTogether),
	)

	return report, nil
}

func (s *Service) RankPairs(ctx context.Context, opts AnalyzeOptions) ([]domain.ResultPair, error) {
	periods, err := s.load(ctx, opts)
	if err != nil {
		return nil, err
	}

	totals, err := s.aggregate(ctx, periods, opts)
	if err != nil {
		return nil, err
	}

	ranked := Rank(totals)
	if opts.Limit > 0 && len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}

	return ranked, nil
}

func (s *Service) load(ctx context.Context, opts AnalyzeOptions) ([]domain.WorkPeriod, error) {
	periods, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load work periods: %w", err)
	}

	projects := len(groupByProject(periods))
	s.logger.Debug("work periods loaded", slog.Int("records", len(periods)), slog.Int("projects", projects))
	if opts.OnLoaded != nil {
		opts.OnLoaded(len(periods), projects)
	}

	return periods, nil
}

func (s *Service) aggregate(ctx context.Context, periods []domain.WorkPeriod, opts AnalyzeOptions) (domain.PairTotals, error) {
	if !opts.Parallel {
		return Aggregate(periods), nil
	}

	s.logger.Debug("aggregating in parallel", slog.Int("workers", opts.Workers))
	totals, err := AggregateParallel(ctx, periods, opts.Workers)
	if err != nil {
		return nil, fmt.Errorf("aggregate overlaps: %w", err)
	}

	return totals, nil
}
