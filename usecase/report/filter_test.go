package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/newsroom/domain"
)

func validForm() FilterForm {
	return FilterForm{
		PublicationFrom: "2024-01-01",
		PublicationTo:   "2024-12-31",
		OperationFrom:   "2024-02-01",
		OperationTo:     "2024-11-30",
		Keyword:         "Test",
	}
}

func TestParseFilterValid(t *testing.T) {
	form := validForm()
	form.Keyword = "  Test  "

	filter, verr := ParseFilter(&form)
	require.Nil(t, verr)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), filter.Publication.From)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), filter.Publication.To)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), filter.Operation.From)
	assert.Equal(t, time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), filter.Operation.To)
	assert.Equal(t, "Test", filter.Keyword)
	assert.Equal(t, "Test", form.Keyword)

	assert.True(t, filter.Publication.Contains(filter.Publication.From))
	assert.True(t, filter.Publication.Contains(filter.Publication.To))
	assert.False(t, filter.Publication.Contains(filter.Publication.To.AddDate(0, 0, 1)))
}

func TestParseFilterRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FilterForm)
		field  string
	}{
		{name: "empty publication_from", mutate: func(f *FilterForm) { f.PublicationFrom = "" }, field: "publication_from"},
		{name: "malformed publication_to", mutate: func(f *FilterForm) { f.PublicationTo = "31.12.2024" }, field: "publication_to"},
		{name: "impossible operation_from", mutate: func(f *FilterForm) { f.OperationFrom = "2024-02-30" }, field: "operation_from"},
		{name: "blank operation_to", mutate: func(f *FilterForm) { f.OperationTo = "   " }, field: "operation_to"},
		{name: "missing keyword", mutate: func(f *FilterForm) { f.Keyword = "" }, field: "keyword"},
		{name: "whitespace keyword", mutate: func(f *FilterForm) { f.Keyword = " \t " }, field: "keyword"},
		{name: "keyword too long", mutate: func(f *FilterForm) { f.Keyword = strings.Repeat("к", MaxKeywordLength+1) }, field: "keyword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, verr := ParseFilter(&form)
			require.NotNil(t, verr)
			assert.Contains(t, verr.Fields(), tt.field)
			assert.Len(t, verr.Fields(), 1)
		})
	}
}

func TestParseFilterReportsEveryField(t *testing.T) {
	form := FilterForm{OperationFrom: "2024-01-01", OperationTo: "2024-12-31", Keyword: "Test"}

	_, verr := ParseFilter(&form)
	require.NotNil(t, verr)
	assert.Equal(t, map[string]string{
		"publication_from": "publication_from is required",
		"publication_to":   "publication_to is required",
	}, verr.Fields())
}

func TestParseFilterKeepsInvertedRange(t *testing.T) {
	form := validForm()
	form.PublicationFrom, form.PublicationTo = form.PublicationTo, form.PublicationFrom

	filter, verr := ParseFilter(&form)
	require.Nil(t, verr)
	assert.True(t, filter.Publication.From.After(filter.Publication.To))
}

func TestParseFilterNilForm(t *testing.T) {
	_, verr := ParseFilter(nil)
	require.NotNil(t, verr)
}

func TestFormFromFilterRoundTrip(t *testing.T) {
	form := validForm()
	filter, verr := ParseFilter(&form)
	require.Nil(t, verr)

	assert.Equal(t, validForm(), FormFromFilter(filter))
	assert.Equal(t, FilterForm{}, FormFromFilter(domain.Filter{}))
}
