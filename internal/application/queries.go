package application

import "github.com/bnema/employee-pairs-cli/internal/domain"

type AnalyzeOptions struct {
	Parallel bool
	Workers  int
	// Limit truncates ranked output when positive.
	Limit int
	// OnLoaded, when set, is called once the records are loaded and before
	// any aggregation starts.
	OnLoaded func(records, projects int)
}

type Report struct {
	Longest   *domain.ResultPair      `json:"longest"`
	Breakdown []domain.ProjectOverlap `json:"breakdown,omitempty"`
	Records   int                     `json:"records"`
	Projects  int                     `json:"projects"`
	Pairs     int                     `json:"pairs"`
}

func (r Report) Found() bool {
	return r.Longest != nil
}
