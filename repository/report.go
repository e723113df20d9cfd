package repository

import (
	"context"

	"github.com/fastygo/newsroom/domain"
)

// ReportRepository reads everything the video report needs from the content store.
// Lookup methods receive distinct id sets and return no rows for an empty set.
type ReportRepository interface {
	AggregateVideos(ctx context.Context, filter domain.Filter) ([]domain.VideoAggregate, error)
	AgreementsByIDs(ctx context.Context, ids []int64) ([]domain.Agreement, error)
	CompaniesByIDs(ctx context.Context, ids []int64) ([]domain.Company, error)
	TagConnectionsByVideoIDs(ctx context.Context, videoIDs []int64) ([]domain.TagConnection, error)
	TagsByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)
}
