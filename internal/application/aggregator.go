package application

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/employee-pairs-cli/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Aggregate sums, per employee pair, the inclusive days the two employees
// spent on the same project at the same time. Pairs that never overlap are
// absent from the result.
func Aggregate(periods []domain.WorkPeriod) domain.PairTotals {
	totals := make(domain.PairTotals)
	for _, group := range groupByProject(periods) {
		accumulateProject(totals, group)
	}

	return totals
}

// AggregateParallel computes the same totals as Aggregate with each project
// group handled by its own task, at most workers at a time.
func AggregateParallel(ctx context.Context, periods []domain.WorkPeriod, workers int) (domain.PairTotals, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	totals := make(domain.PairTotals)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, group := range groupByProject(periods) {
		group := group
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			partial := make(domain.PairTotals)
			accumulateProject(partial, group)

			mu.Lock()
			defer mu.Unlock()
			for key, days := range partial {
				totals.Add(key, days)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return totals, nil
}

// Breakdown lists the per-project overlaps that make up the total of key,
// ordered by project id.
func Breakdown(periods []domain.WorkPeriod, key domain.PairKey) []domain.ProjectOverlap {
	overlaps := make([]domain.ProjectOverlap, 0)
	for projectID, group := range groupByProject(periods) {
		days := 0
		forEachPair(group, func(p, q domain.WorkPeriod) {
			if domain.NewPairKey(p.EmployeeID, q.EmployeeID) != key {
				return
			}
			days += domain.OverlapDays(p, q)
		})
		if days > 0 {
			overlaps = append(overlaps, domain.ProjectOverlap{Pair: key, ProjectID: projectID, Days: days})
		}
	}

	sort.Slice(overlaps, func(i, j int) bool {
		return overlaps[i].ProjectID < overlaps[j].ProjectID
	})

	return overlaps
}

func groupByProject(periods []domain.WorkPeriod) map[domain.ProjectID][]domain.WorkPeriod {
	groups := make(map[domain.ProjectID][]domain.WorkPeriod)
	for _, period := range periods {
		groups[period.ProjectID] = append(groups[period.ProjectID], period)
	}

	return groups
}

func accumulateProject(totals domain.PairTotals, group []domain.WorkPeriod) {
	forEachPair(group, func(p, q domain.WorkPeriod) {
		if days := domain.OverlapDays(p, q); days > 0 {
			totals.Add(domain.NewPairKey(p.EmployeeID, q.EmployeeID), days)
		}
	})
}

// forEachPair visits every 2-combination of records that belong to two
// different employees.
func forEachPair(group []domain.WorkPeriod, visit func(p, q domain.WorkPeriod)) {
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			if group[i].EmployeeID == group[j].EmployeeID {
				continue
			}
			visit(group[i], group[j])
		}
	}
}
