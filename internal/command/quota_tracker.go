package command

import (
	"context"
	"time"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

// QuotaTracker tracks and enforces the per-user, per-day AI feedback
// budget. Privileged users bypass the stored record entirely and never
// accumulate a meaningful count.
type QuotaTracker struct {
	Quota  datasources.QuotaRepository
	Policy domain.PrivilegePolicy
	Limit  int
}

func NewQuotaTracker(quota datasources.QuotaRepository, policy domain.PrivilegePolicy) *QuotaTracker {
	return &QuotaTracker{
		Quota:  quota,
		Policy: policy,
		Limit:  domain.DailyFeedbackLimit,
	}
}

// Status reports the user's budget for the day containing now.
//
// If the quota record cannot be read the tracker fails open and reports a
// full budget: the feature degrades to "allow" rather than blocking users
// on infrastructure errors.
func (t *QuotaTracker) Status(ctx context.Context, userID, email string, now time.Time) domain.QuotaStatus {
	if t.Policy.IsPrivileged(email) {
		return domain.QuotaStatus{
			Used:      0,
			Remaining: domain.PrivilegedRemaining,
			Limit:     t.Limit,
		}
	}

	quota, err := t.Quota.GetDailyQuota(ctx, userID, domain.QuotaDate(now))
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "unable to read feedback quota, failing open",
			"user_id", userID,
			"error", err,
		)
		return domain.QuotaStatus{Used: 0, Remaining: t.Limit, Limit: t.Limit}
	}

	remaining := t.Limit - quota.RequestCount
	if remaining < 0 {
		remaining = 0
	}

	return domain.QuotaStatus{
		Used:      quota.RequestCount,
		Remaining: remaining,
		Limit:     t.Limit,
	}
}

// Record charges one request against the user's budget for the day
// containing now. No-op for privileged users.
func (t *QuotaTracker) Record(ctx context.Context, userID, email string, now time.Time) error {
	if t.Policy.IsPrivileged(email) {
		return nil
	}
	return t.Quota.IncrementDailyQuota(ctx, userID, domain.QuotaDate(now))
}
