package ports

import (
	"context"

	"github.com/bnema/employee-pairs-cli/internal/domain"
)

// RecordSource supplies validated work periods. Rows that cannot be parsed
// never reach the caller.
type RecordSource interface {
	Load(ctx context.Context) ([]domain.WorkPeriod, error)
}
