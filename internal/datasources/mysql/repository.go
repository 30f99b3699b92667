package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"

	"github.com/caseprep/casewise/internal/datasources"
	"github.com/caseprep/casewise/internal/domain"
)

const mysqlErrDuplicateEntry = 1062

var _ datasources.CaseRepository = (*Repository)(nil)
var _ datasources.FeedbackRepository = (*Repository)(nil)
var _ datasources.QuotaRepository = (*Repository)(nil)
var _ datasources.SimilarityCacheStore = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListLatestCaseIDs(
	ctx context.Context,
	filters domain.CaseFilters,
	options domain.CaseListOptions,
) ([]string, error) {
	sb := sqlbuilder.Select("case_id")
	sb.From("cases")

	conds := buildCasesConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	orderings, err := buildCasesOrder(options)
	if err != nil {
		return nil, fmt.Errorf("building cases order by clause: %w", err)
	}

	sb.OrderBy(orderings...)
	sb.Offset((options.Page - 1) * options.PageSize)
	sb.Limit(options.PageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running cases query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	caseIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning case IDs: %w", err)
		}
		caseIDs = append(caseIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return caseIDs, nil
}

func (r *Repository) FetchCasesByID(ctx context.Context, caseIDs []string) ([]domain.Case, error) {
	if len(caseIDs) == 0 {
		return []domain.Case{}, nil
	}

	ids := make([]interface{}, 0, len(caseIDs))
	for _, id := range caseIDs {
		ids = append(ids, id)
	}

	sb := sqlbuilder.Select(
		"case_id", "title", "description", "category", "difficulty",
		"total_answers", "avg_upvotes", "published_at",
	)
	sb.From("cases")
	sb.Where(sb.In("case_id", ids...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching cases by ID: %w", err)
	}
	defer func() { _ = rows.Close() }()

	caseMap := make(map[string]domain.Case, len(caseIDs))
	for rows.Next() {
		var c domain.Case
		if err := rows.Scan(
			&c.CaseID,
			&c.Title,
			&c.Description,
			&c.Category,
			&c.Difficulty,
			&c.TotalAnswers,
			&c.AvgUpvotes,
			&c.PublishedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning cases: %w", err)
		}
		caseMap[c.CaseID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	// Results keep the order of the input IDs.
	cases := make([]domain.Case, 0, len(caseIDs))
	for _, id := range caseIDs {
		if c, exists := caseMap[id]; exists {
			cases = append(cases, c)
		}
	}

	return cases, nil
}

func (r *Repository) ListAllCaseIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT case_id FROM cases ORDER BY published_at, case_id")
	if err != nil {
		return nil, fmt.Errorf("listing all case IDs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	caseIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning case IDs: %w", err)
		}
		caseIDs = append(caseIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return caseIDs, nil
}

func (r *Repository) TotalMatchingCases(ctx context.Context, filters domain.CaseFilters) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("cases")

	conds := buildCasesConditions(sb, filters)
	if len(conds) > 0 {
		sb.Where(conds...)
	}

	query, args := sb.Build()

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting matching cases: %w", err)
	}
	return count, nil
}

const getFeedbackByAnswerIDQuery = `
SELECT id, answer_id, user_id, case_id, case_title, answer_text, raw_text, sections, generated_at
FROM answer_feedback
WHERE answer_id = ?`

func (r *Repository) GetFeedbackByAnswerID(ctx context.Context, answerID string) (domain.Feedback, error) {
	var feedback domain.Feedback
	var sectionsJSON []byte

	err := r.db.QueryRowContext(ctx, getFeedbackByAnswerIDQuery, answerID).Scan(
		&feedback.ID,
		&feedback.AnswerID,
		&feedback.UserID,
		&feedback.CaseID,
		&feedback.CaseTitle,
		&feedback.AnswerText,
		&feedback.RawText,
		&sectionsJSON,
		&feedback.GeneratedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Feedback{}, domain.ErrFeedbackNotFound
	}
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("getting feedback for answer [%s]: %w", answerID, err)
	}

	if err := json.Unmarshal(sectionsJSON, &feedback.Sections); err != nil {
		return domain.Feedback{}, fmt.Errorf("decoding stored feedback sections: %w", err)
	}

	return feedback, nil
}

const createFeedbackQuery = `
INSERT INTO answer_feedback
	(id, answer_id, user_id, case_id, case_title, answer_text, raw_text, sections, generated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// CreateFeedback relies on the unique key on answer_id to guarantee at
// most one record per answer even under concurrent duplicate requests.
func (r *Repository) CreateFeedback(ctx context.Context, feedback domain.Feedback) error {
	sectionsJSON, err := json.Marshal(feedback.Sections)
	if err != nil {
		return fmt.Errorf("encoding feedback sections: %w", err)
	}

	_, err = r.db.ExecContext(ctx, createFeedbackQuery,
		feedback.ID,
		feedback.AnswerID,
		feedback.UserID,
		feedback.CaseID,
		feedback.CaseTitle,
		feedback.AnswerText,
		feedback.RawText,
		sectionsJSON,
		feedback.GeneratedAt,
	)
	if err != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return domain.ErrFeedbackExists
		}
		return fmt.Errorf("creating feedback record: %w", err)
	}

	return nil
}

const getDailyQuotaQuery = `
SELECT request_count, last_request_at
FROM feedback_quota
WHERE user_id = ? AND quota_date = ?`

func (r *Repository) GetDailyQuota(ctx context.Context, userID, date string) (domain.DailyQuota, error) {
	quota := domain.DailyQuota{UserID: userID, Date: date}

	err := r.db.QueryRowContext(ctx, getDailyQuotaQuery, userID, date).Scan(
		&quota.RequestCount,
		&quota.LastRequestAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return quota, nil
	}
	if err != nil {
		return domain.DailyQuota{}, fmt.Errorf("getting daily quota for user [%s]: %w", userID, err)
	}

	return quota, nil
}

const incrementDailyQuotaQuery = `
INSERT INTO feedback_quota (user_id, quota_date, request_count, last_request_at)
VALUES (?, ?, 1, UTC_TIMESTAMP())
ON DUPLICATE KEY UPDATE
	request_count = request_count + 1,
	last_request_at = UTC_TIMESTAMP()`

// IncrementDailyQuota is a single atomic upsert, so concurrent requests
// cannot lose increments.
func (r *Repository) IncrementDailyQuota(ctx context.Context, userID, date string) error {
	if _, err := r.db.ExecContext(ctx, incrementDailyQuotaQuery, userID, date); err != nil {
		return fmt.Errorf("incrementing daily quota for user [%s]: %w", userID, err)
	}
	return nil
}

const getSimilarCasesCacheQuery = `
SELECT payload, cached_at
FROM similar_cases_cache
WHERE case_id = ?`

func (r *Repository) GetCachedSimilarCases(ctx context.Context, caseID string) (domain.CachedSimilarCases, error) {
	var payload []byte
	var entry domain.CachedSimilarCases

	err := r.db.QueryRowContext(ctx, getSimilarCasesCacheQuery, caseID).Scan(&payload, &entry.CachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CachedSimilarCases{}, domain.ErrSimilarityCacheMiss
	}
	if err != nil {
		return domain.CachedSimilarCases{}, fmt.Errorf("getting cached similar cases for [%s]: %w", caseID, err)
	}

	if err := json.Unmarshal(payload, &entry.Cases); err != nil {
		return domain.CachedSimilarCases{}, fmt.Errorf("decoding cached similar cases: %w", err)
	}

	return entry, nil
}

const putSimilarCasesCacheQuery = `
INSERT INTO similar_cases_cache (case_id, payload, cached_at)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
	payload = VALUES(payload),
	cached_at = VALUES(cached_at)`

func (r *Repository) PutCachedSimilarCases(ctx context.Context, caseID string, entry domain.CachedSimilarCases) error {
	payload, err := json.Marshal(entry.Cases)
	if err != nil {
		return fmt.Errorf("encoding similar cases cache payload: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, putSimilarCasesCacheQuery, caseID, payload, entry.CachedAt); err != nil {
		return fmt.Errorf("storing cached similar cases for [%s]: %w", caseID, err)
	}
	return nil
}

func buildCasesConditions(sb *sqlbuilder.SelectBuilder, filters domain.CaseFilters) []string {
	var conds []string

	if len(filters.OnlyCategories) > 0 {
		categories := make([]interface{}, 0, len(filters.OnlyCategories))
		for _, category := range filters.OnlyCategories {
			categories = append(categories, category)
		}
		conds = append(conds, sb.In("category", categories...))
	}

	if len(filters.OnlyDifficulties) > 0 {
		difficulties := make([]interface{}, 0, len(filters.OnlyDifficulties))
		for _, difficulty := range filters.OnlyDifficulties {
			difficulties = append(difficulties, difficulty)
		}
		conds = append(conds, sb.In("difficulty", difficulties...))
	}

	return conds
}

func buildCasesOrder(options domain.CaseListOptions) ([]string, error) {
	if len(options.Ordering) == 0 {
		return []string{"published_at DESC"}, nil
	}

	var orderings []string
	for _, ordering := range options.Ordering {
		var col string
		switch ordering.Field {
		case domain.CaseOrderingFieldPublishedAt:
			col = "published_at"
		case domain.CaseOrderingFieldTitle:
			col = "title"
		case domain.CaseOrderingFieldCategory:
			col = "category"
		case domain.CaseOrderingFieldDifficulty:
			col = "difficulty"
		default:
			return nil, fmt.Errorf("unknown ordering field: %s", ordering.Field)
		}

		if ordering.Desc {
			col += " DESC"
		}
		orderings = append(orderings, col)
	}

	return orderings, nil
}
