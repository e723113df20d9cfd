package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fastygo/newsroom/domain"
	"github.com/fastygo/newsroom/repository"
)

// Querier is the read subset of pgxpool.Pool used by the report repository.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type reportRepository struct {
	db Querier
}

// NewReportRepository returns a Postgres-backed ReportRepository.
func NewReportRepository(db Querier) repository.ReportRepository {
	return &reportRepository{db: db}
}

// One row per video: operations are counted before the title join, so a video
// with several matching titles is neither duplicated nor double counted.
const aggregateVideosQuery = `
WITH filtered_ops AS (
	SELECT id, agreement_id, video_project_id
	FROM business_agreement_operations
	WHERE created_at BETWEEN $1::date AND $2::date
),
filtered_videos AS (
	SELECT id, limit_type
	FROM content_vod_video_projects
	WHERE published_at BETWEEN $3::date AND $4::date
),
matched_titles AS (
	SELECT content_vod_video_project_id AS video_id, MIN(title) AS title
	FROM content_vod_video_project_translations
	WHERE title ILIKE $5 ESCAPE '\'
	GROUP BY content_vod_video_project_id
)
SELECT
	v.id AS video_id,
	t.title,
	v.limit_type,
	COUNT(o.id) AS download_count,
	ARRAY_REMOVE(ARRAY_AGG(DISTINCT o.agreement_id), NULL) AS agreement_ids
FROM filtered_ops o
JOIN filtered_videos v ON o.video_project_id = v.id
JOIN matched_titles t ON t.video_id = v.id
GROUP BY v.id, t.title, v.limit_type
ORDER BY v.id
`

func (r *reportRepository) AggregateVideos(ctx context.Context, filter domain.Filter) ([]domain.VideoAggregate, error) {
	rows, err := r.db.Query(ctx, aggregateVideosQuery,
		filter.Operation.From,
		filter.Operation.To,
		filter.Publication.From,
		filter.Publication.To,
		likePattern(filter.Keyword),
	)
	if err != nil {
		return nil, fmt.Errorf("aggregate videos: %w", err)
	}
	defer rows.Close()

	var result []domain.VideoAggregate
	for rows.Next() {
		var row domain.VideoAggregate
		if err := rows.Scan(
			&row.VideoID,
			&row.Title,
			&row.LimitType,
			&row.DownloadCount,
			&row.AgreementIDs,
		); err != nil {
			return nil, fmt.Errorf("scan video aggregate: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate videos: %w", err)
	}
	return result, nil
}

func (r *reportRepository) AgreementsByIDs(ctx context.Context, ids []int64) ([]domain.Agreement, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `SELECT id, company_id FROM business_agreements WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list agreements: %w", err)
	}
	defer rows.Close()

	var agreements []domain.Agreement
	for rows.Next() {
		var a domain.Agreement
		if err := rows.Scan(&a.ID, &a.CompanyID); err != nil {
			return nil, fmt.Errorf("scan agreement: %w", err)
		}
		agreements = append(agreements, a)
	}
	return agreements, rows.Err()
}

func (r *reportRepository) CompaniesByIDs(ctx context.Context, ids []int64) ([]domain.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `SELECT id, name FROM business_companies WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var (
			c    domain.Company
			name *string
		)
		if err := rows.Scan(&c.ID, &name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		if name != nil {
			c.Name = *name
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *reportRepository) TagConnectionsByVideoIDs(ctx context.Context, videoIDs []int64) ([]domain.TagConnection, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}
	const query = `SELECT connectable_id, tag_id FROM content_tag_connections WHERE connectable_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, videoIDs)
	if err != nil {
		return nil, fmt.Errorf("list tag connections: %w", err)
	}
	defer rows.Close()

	var connections []domain.TagConnection
	for rows.Next() {
		var c domain.TagConnection
		if err := rows.Scan(&c.VideoProjectID, &c.TagID); err != nil {
			return nil, fmt.Errorf("scan tag connection: %w", err)
		}
		connections = append(connections, c)
	}
	return connections, rows.Err()
}

func (r *reportRepository) TagsByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `SELECT content_tag_id, name FROM content_tag_translations WHERE content_tag_id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var (
			t    domain.Tag
			name *string
		)
		if err := rows.Scan(&t.ID, &name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		if name != nil {
			t.Name = *name
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
