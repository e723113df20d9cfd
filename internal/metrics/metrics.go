package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Report outcomes.
const (
	OutcomeMatched = "matched"
	OutcomeEmpty   = "empty"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsroom_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsroom_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsroom_video_reports_total",
			Help: "Video report requests by outcome",
		},
		[]string{"outcome"}, // matched, empty, invalid, error
	)

	ReportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsroom_video_report_duration_seconds",
			Help:    "Time to compute a video report, including reference resolution",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	ReportVideos = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsroom_video_report_rows",
			Help:    "Number of videos in a computed report",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	TokensRevokedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsroom_tokens_revoked_total",
			Help: "Access tokens revoked through logout",
		},
	)

	JournalEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newsroom_journal_entries",
			Help: "Report runs currently held in the journal",
		},
	)

	JournalPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsroom_journal_pruned_total",
			Help: "Report runs removed from the journal by retention",
		},
	)
)

// RecordHTTPRequest records a served request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordReport records one report request. rows is ignored unless the
// outcome is matched.
func RecordReport(outcome string, rows int, duration time.Duration) {
	ReportsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeInvalid {
		return
	}
	ReportDuration.Observe(duration.Seconds())
	if outcome == OutcomeMatched {
		ReportVideos.Observe(float64(rows))
	}
}

// RecordJournalPrune records a retention sweep.
func RecordJournalPrune(removed, remaining int) {
	JournalPruned.Add(float64(removed))
	JournalEntries.Set(float64(remaining))
}
