package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordReportCountsOutcomes(t *testing.T) {
	matched := testutil.ToFloat64(ReportsTotal.WithLabelValues(OutcomeMatched))
	invalid := testutil.ToFloat64(ReportsTotal.WithLabelValues(OutcomeInvalid))

	RecordReport(OutcomeMatched, 3, 40*time.Millisecond)
	RecordReport(OutcomeInvalid, 0, 0)

	assert.Equal(t, matched+1, testutil.ToFloat64(ReportsTotal.WithLabelValues(OutcomeMatched)))
	assert.Equal(t, invalid+1, testutil.ToFloat64(ReportsTotal.WithLabelValues(OutcomeInvalid)))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))

	RecordHTTPRequest("GET", "/health", 200, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")))
}

func TestRecordJournalPrune(t *testing.T) {
	before := testutil.ToFloat64(JournalPruned)

	RecordJournalPrune(4, 10)

	assert.Equal(t, before+4, testutil.ToFloat64(JournalPruned))
	assert.Equal(t, float64(10), testutil.ToFloat64(JournalEntries))
}
