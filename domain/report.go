package domain

import "time"

// DateLayout is the wire format of every filter date.
const DateLayout = "2006-01-02"

// EmptyCell is rendered in place of an empty tag or client list.
const EmptyCell = "—"

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether day falls inside the range, both ends included.
func (r DateRange) Contains(day time.Time) bool {
	return !day.Before(r.From) && !day.After(r.To)
}

// Filter is the validated input of one video report.
type Filter struct {
	Publication DateRange `json:"publication"`
	Operation   DateRange `json:"operation"`
	Keyword     string    `json:"keyword"`
}

// VideoAggregate is one row of the aggregation query.
type VideoAggregate struct {
	VideoID       int64   `json:"video_id"`
	Title         *string `json:"title,omitempty"`
	LimitType     *string `json:"limit_type,omitempty"`
	DownloadCount int64   `json:"download_count"`
	AgreementIDs  []int64 `json:"agreement_ids"`
}

// ReportRow is a display-ready line of the report table.
type ReportRow struct {
	VideoID       int64  `json:"video_id"`
	Title         string `json:"title"`
	Tags          string `json:"tags"`
	RightsType    string `json:"rights_type"`
	Clients       string `json:"clients"`
	DownloadCount int64  `json:"download_count"`
}

// Statistics summarises a computed report.
type Statistics struct {
	Keyword   string `json:"keyword"`
	Videos    int    `json:"videos"`
	Downloads int64  `json:"downloads"`
	Clients   int    `json:"clients"`
}

// Report is the outcome of one filter submission. Stats and Elapsed are nil
// when no video matched the filter.
type Report struct {
	Filter  Filter         `json:"filter"`
	Rows    []ReportRow    `json:"results"`
	Stats   *Statistics    `json:"stats"`
	Elapsed *time.Duration `json:"-"`
}

// Computed reports whether the report produced statistics.
func (r *Report) Computed() bool {
	return r != nil && r.Stats != nil
}

// ReportRun is the journal entry written for every executed report.
type ReportRun struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
	Filter    Filter        `json:"filter"`
	Computed  bool          `json:"computed"`
	Videos    int           `json:"videos"`
	Downloads int64         `json:"downloads"`
	Clients   int           `json:"clients"`
	Elapsed   time.Duration `json:"elapsed"`
	CreatedAt time.Time     `json:"created_at"`
}
