package view

import (
	"embed"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/fastygo/newsroom/domain"
	"github.com/fastygo/newsroom/usecase/report"
)

//go:embed report.html
var files embed.FS

var reportPage = template.Must(template.ParseFS(files, "report.html"))

// ReportPage is the data rendered by the video report page.
type ReportPage struct {
	Form       report.FilterForm
	Errors     map[string]string
	Submitted  bool
	Rows       []domain.ReportRow
	Stats      *domain.Statistics
	Elapsed    string
	MaxKeyword int
}

// NewReportPage prepares a page for the submitted form and its outcome.
// rep may be nil when the form was rejected or not yet submitted.
func NewReportPage(form report.FilterForm, errs map[string]string, rep *domain.Report, submitted bool) ReportPage {
	page := ReportPage{
		Form:       form,
		Errors:     errs,
		Submitted:  submitted,
		Rows:       []domain.ReportRow{},
		MaxKeyword: report.MaxKeywordLength,
	}
	if rep == nil {
		return page
	}
	if rep.Rows != nil {
		page.Rows = rep.Rows
	}
	page.Stats = rep.Stats
	if rep.Elapsed != nil {
		page.Elapsed = formatElapsed(*rep.Elapsed)
	}
	return page
}

// RenderReport writes the report page.
func RenderReport(w io.Writer, page ReportPage) error {
	return reportPage.Execute(w, page)
}

func formatElapsed(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64) + " s"
}
