package domain

import "time"

// DailyFeedbackLimit is the number of AI feedback generations a
// non-privileged user gets per UTC day.
const DailyFeedbackLimit = 3

// PrivilegedRemaining is the remaining-quota value reported for privileged
// users. They bypass the stored record entirely, so the value only needs to
// be large enough that no client treats them as rate limited.
const PrivilegedRemaining = 999

// DailyQuota is one user's feedback request count for one calendar day.
// The UTC date is part of the key, so a fresh budget begins implicitly at
// midnight with no reset job.
type DailyQuota struct {
	UserID        string
	Date          string
	RequestCount  int
	LastRequestAt time.Time
}

// QuotaStatus is the user-facing view of today's budget.
type QuotaStatus struct {
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
	Limit     int `json:"limit"`
}

// QuotaDate formats a timestamp as the UTC date string used to key
// DailyQuota records, e.g. "2024-06-01".
func QuotaDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
