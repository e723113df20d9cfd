package transport

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/fastygo/newsroom/domain"
)

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// ReportResponse is the JSON body of a report. Stats and ElapsedMS are null
// when nothing matched the filter.
type ReportResponse struct {
	Results   []domain.ReportRow `json:"results"`
	Stats     *domain.Statistics `json:"stats"`
	ElapsedMS *float64           `json:"elapsed_ms"`
}

// NewReportResponse converts a domain report into its JSON shape.
func NewReportResponse(report *domain.Report) ReportResponse {
	resp := ReportResponse{Results: []domain.ReportRow{}}
	if report == nil {
		return resp
	}
	if report.Rows != nil {
		resp.Results = report.Rows
	}
	resp.Stats = report.Stats
	if report.Elapsed != nil {
		ms := float64(report.Elapsed.Microseconds()) / 1000
		resp.ElapsedMS = &ms
	}
	return resp
}

// ValidationErrorMeta carries per-field messages of a rejected filter.
type ValidationErrorMeta struct {
	Fields  map[string]string  `json:"fields"`
	Results []domain.ReportRow `json:"results"`
}

// HistoryEntry is one journaled report run.
type HistoryEntry struct {
	ID              string    `json:"id"`
	RequestID       string    `json:"request_id,omitempty"`
	Keyword         string    `json:"keyword"`
	PublicationFrom string    `json:"publication_from"`
	PublicationTo   string    `json:"publication_to"`
	OperationFrom   string    `json:"operation_from"`
	OperationTo     string    `json:"operation_to"`
	Computed        bool      `json:"computed"`
	Videos          int       `json:"videos"`
	Downloads       int64     `json:"downloads"`
	Clients         int       `json:"clients"`
	ElapsedMS       float64   `json:"elapsed_ms"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewHistory converts journal entries into their JSON shape.
func NewHistory(runs []domain.ReportRun) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(runs))
	for _, run := range runs {
		entries = append(entries, HistoryEntry{
			ID:              run.ID,
			RequestID:       run.RequestID,
			Keyword:         run.Filter.Keyword,
			PublicationFrom: formatDay(run.Filter.Publication.From),
			PublicationTo:   formatDay(run.Filter.Publication.To),
			OperationFrom:   formatDay(run.Filter.Operation.From),
			OperationTo:     formatDay(run.Filter.Operation.To),
			Computed:        run.Computed,
			Videos:          run.Videos,
			Downloads:       run.Downloads,
			Clients:         run.Clients,
			ElapsedMS:       float64(run.Elapsed.Microseconds()) / 1000,
			CreatedAt:       run.CreatedAt,
		})
	}
	return entries
}

func formatDay(day time.Time) string {
	if day.IsZero() {
		return ""
	}
	return day.Format(domain.DateLayout)
}
