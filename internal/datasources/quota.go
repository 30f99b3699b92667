package datasources

import (
	"context"

	"github.com/caseprep/casewise/internal/domain"
)

// QuotaRepository combines the daily quota interfaces.
type QuotaRepository interface {
	QuotaGetter
	QuotaIncrementer
}

type QuotaGetter interface {
	// GetDailyQuota returns the zero record when the user has made no
	// requests on the given date.
	GetDailyQuota(ctx context.Context, userID, date string) (domain.DailyQuota, error)
}

type QuotaIncrementer interface {
	// IncrementDailyQuota atomically adds one to the request count for
	// (userID, date), creating the record if absent.
	IncrementDailyQuota(ctx context.Context, userID, date string) error
}
