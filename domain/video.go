package domain

import "time"

// The records below mirror the external content store. This service only reads them.

// Operation links a business agreement to a video project at a point in time.
type Operation struct {
	ID             int64     `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	AgreementID    int64     `json:"agreement_id"`
	VideoProjectID int64     `json:"video_project_id"`
}

type VideoProject struct {
	ID          int64     `json:"id"`
	PublishedAt time.Time `json:"published_at"`
	LimitType   *string   `json:"limit_type,omitempty"`
}

// Title is a localized label of a video project.
type Title struct {
	VideoProjectID int64  `json:"video_project_id"`
	Title          string `json:"title"`
}

type Agreement struct {
	ID        int64  `json:"id"`
	CompanyID *int64 `json:"company_id,omitempty"`
}

type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TagConnection struct {
	VideoProjectID int64 `json:"connectable_id"`
	TagID          int64 `json:"tag_id"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
