package report

import (
	"strings"
	"time"

	"github.com/fastygo/newsroom/domain"
	"github.com/fastygo/newsroom/internal/validation"
)

// MaxKeywordLength bounds the keyword in characters.
const MaxKeywordLength = 128

// FilterForm is the raw report filter as submitted by the HTML form or the JSON API.
type FilterForm struct {
	PublicationFrom string `json:"publication_from" form:"publication_from" validate:"required,datetime=2006-01-02"`
	PublicationTo   string `json:"publication_to" form:"publication_to" validate:"required,datetime=2006-01-02"`
	OperationFrom   string `json:"operation_from" form:"operation_from" validate:"required,datetime=2006-01-02"`
	OperationTo     string `json:"operation_to" form:"operation_to" validate:"required,datetime=2006-01-02"`
	Keyword         string `json:"keyword" form:"keyword" validate:"required,max=128"`
}

// Normalize trims surrounding whitespace from every field.
func (f *FilterForm) Normalize() {
	f.PublicationFrom = strings.TrimSpace(f.PublicationFrom)
	f.PublicationTo = strings.TrimSpace(f.PublicationTo)
	f.OperationFrom = strings.TrimSpace(f.OperationFrom)
	f.OperationTo = strings.TrimSpace(f.OperationTo)
	f.Keyword = strings.TrimSpace(f.Keyword)
}

// ParseFilter validates a submitted form and converts it into a domain filter.
// The form is normalized in place so callers can re-render the cleaned values.
func ParseFilter(form *FilterForm) (domain.Filter, *validation.RequestValidationError) {
	if form == nil {
		return domain.Filter{}, validation.NewRequestValidationError("form", "filter is required")
	}
	form.Normalize()
	if verr := validation.ValidateStruct(form); verr != nil {
		return domain.Filter{}, verr
	}

	// datetime already accepted the layout, parsing cannot fail here.
	return domain.Filter{
		Publication: domain.DateRange{
			From: parseDay(form.PublicationFrom),
			To:   parseDay(form.PublicationTo),
		},
		Operation: domain.DateRange{
			From: parseDay(form.OperationFrom),
			To:   parseDay(form.OperationTo),
		},
		Keyword: form.Keyword,
	}, nil
}

// FormFromFilter renders a filter back into form values.
func FormFromFilter(filter domain.Filter) FilterForm {
	return FilterForm{
		PublicationFrom: formatDay(filter.Publication.From),
		PublicationTo:   formatDay(filter.Publication.To),
		OperationFrom:   formatDay(filter.Operation.From),
		OperationTo:     formatDay(filter.Operation.To),
		Keyword:         filter.Keyword,
	}
}

func parseDay(value string) time.Time {
	day, _ := time.Parse(domain.DateLayout, value)
	return day
}

func formatDay(day time.Time) string {
	if day.IsZero() {
		return ""
	}
	return day.Format(domain.DateLayout)
}
