package domain

import "time"

// Feedback is one AI feedback result for one submitted answer.
// At most one record exists per AnswerID; all fields are immutable once
// the record is created. Sections are derived from RawText and can be
// recomputed from it at any time without touching the model.
type Feedback struct {
	ID          string           `json:"id"`
	AnswerID    string           `json:"answer_id"`
	UserID      string           `json:"user_id"`
	CaseID      string           `json:"case_id"`
	CaseTitle   string           `json:"case_title"`
	AnswerText  string           `json:"answer_text"`
	RawText     string           `json:"raw_text"`
	Sections    FeedbackSections `json:"sections"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// FeedbackSections holds the labeled sections extracted from the raw model
// output. A nil slice means the section heading could not be located; an
// empty non-nil slice means the heading was found but contained no bullets.
// Callers must keep that distinction, so the fields carry no omitempty:
// nil encodes as null and an empty list as [], and both survive the
// storage round-trip.
type FeedbackSections struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Missing      []string `json:"missing_considerations"`
	Frameworks   []string `json:"framework_suggestions"`
}

// Empty reports whether no section was located at all.
func (s FeedbackSections) Empty() bool {
	return s.Strengths == nil && s.Improvements == nil && s.Missing == nil && s.Frameworks == nil
}
