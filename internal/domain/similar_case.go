package domain

import "time"

// SimilarCase is one ranked result from a similarity query over the
// case vector index. It is transient: reconstructed per query and cached,
// never stored as a first-class record.
type SimilarCase struct {
	CaseID             string  `json:"case_id"`
	Title              string  `json:"title"`
	DescriptionSnippet string  `json:"description_snippet"`
	Category           string  `json:"category"`
	Difficulty         string  `json:"difficulty"`
	Score              float64 `json:"similarity_score"`
	TotalAnswers       int     `json:"total_answers,omitempty"`
	AvgUpvotes         float64 `json:"avg_upvotes,omitempty"`
}

// CachedSimilarCases is a similarity result set plus the time it was
// produced. Entries older than the configured TTL are treated as absent on
// the normal lookup path, but may still serve as a degraded fallback when
// the vector index is unreachable.
type CachedSimilarCases struct {
	Cases    []SimilarCase `json:"cases"`
	CachedAt time.Time     `json:"cached_at"`
}

// Fresh reports whether the entry is still within its validity window.
func (c CachedSimilarCases) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(c.CachedAt) < ttl
}
