package application

import (
	"sort"

	"github.com/bnema/employee-pairs-cli/internal/domain"
)

// SelectLongest returns the pair with the greatest total. Ties go to the
// smallest pair key. The boolean is false when totals is empty.
func SelectLongest(totals domain.PairTotals) (domain.ResultPair, bool) {
	var (
		bestKey  domain.PairKey
		bestDays int
		found    bool
	)

	for key, days := range totals {
		if !found || days > bestDays || (days == bestDays && key.Less(bestKey)) {
			bestKey, bestDays, found = key, days, true
		}
	}

	if !found {
		return domain.ResultPair{}, false
	}

	return toResultPair(bestKey, bestDays), true
}

// Rank orders every pair by total descending, then by pair key.
func Rank(totals domain.PairTotals) []domain.ResultPair {
	keys := make([]domain.PairKey, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		left, right := totals[keys[i]], totals[keys[j]]
		if left == right {
			return keys[i].Less(keys[j])
		}
		return left > right
	})

	ranked := make([]domain.ResultPair, 0, len(keys))
	for _, key := range keys {
		ranked = append(ranked, toResultPair(key, totals[key]))
	}

	return ranked
}

func toResultPair(key domain.PairKey, days int) domain.ResultPair {
	return domain.ResultPair{
		Employee1ID:             key.First,
		Employee2ID:             key.Second,
		TotalDaysWorkedTogether: days,
	}
}
