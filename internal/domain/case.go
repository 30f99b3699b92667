package domain

import (
	"time"
	"unicode/utf8"
)

type Case struct {
	CaseID       string    `json:"case_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Difficulty   string    `json:"difficulty"`
	TotalAnswers int       `json:"total_answers"`
	AvgUpvotes   float64   `json:"avg_upvotes"`
	PublishedAt  time.Time `json:"published_at"`
}

type CaseFilters struct {
	OnlyCategories   []string
	OnlyDifficulties []string
}

type CaseListOptions struct {
	Ordering       []CaseOrdering
	Page, PageSize int
}

type CaseOrdering struct {
	Field CaseOrderingField
	Desc  bool
}

type CaseOrderingField string

const CaseOrderingFieldPublishedAt CaseOrderingField = "published_at"
const CaseOrderingFieldTitle CaseOrderingField = "title"
const CaseOrderingFieldCategory CaseOrderingField = "category"
const CaseOrderingFieldDifficulty CaseOrderingField = "difficulty"

var ValidOrderingFields = []CaseOrderingField{
	CaseOrderingFieldPublishedAt,
	CaseOrderingFieldTitle,
	CaseOrderingFieldCategory,
	CaseOrderingFieldDifficulty,
}

// DailyCaseIndex picks the case-of-the-day slot for a given date.
// The pick only depends on the UTC date, so every process agrees on the
// same case for the whole day and rolls over at midnight UTC.
func DailyCaseIndex(date time.Time, total int) int {
	if total <= 0 {
		return 0
	}
	days := int(date.UTC().Truncate(24*time.Hour).Unix() / (60 * 60 * 24))
	return days % total
}

const descriptionSnippetMaxLen = 200

// DescriptionSnippet truncates a case description to a short preview,
// respecting rune boundaries.
func DescriptionSnippet(description string) string {
	if utf8.RuneCountInString(description) <= descriptionSnippetMaxLen {
		return description
	}

	runes := []rune(description)
	return string(runes[:descriptionSnippetMaxLen])
}
