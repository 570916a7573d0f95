// Package metrics exposes crawl run stats as prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/umputun/noticrawl/pkg/domain"
)

// Metrics holds crawler collectors
type Metrics struct {
	RunsTotal         prometheus.Counter
	RunDuration       prometheus.Histogram
	BoardFailures     *prometheus.CounterVec
	EntriesParsed     prometheus.Counter
	NewArticles       prometheus.Counter
	Notifications     *prometheus.CounterVec
	TokensCleared     prometheus.Counter
	LastRunTimestamp  prometheus.Gauge
	LastRunNewEntries prometheus.Gauge
}

// New makes metrics registered in reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RunsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "noticrawl_runs_total",
			Help: "Total crawl runs",
		}),
		RunDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "noticrawl_run_duration_seconds",
			Help:    "Crawl run duration in seconds",
			Buckets: []float64{.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		BoardFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "noticrawl_board_failures_total",
			Help: "Failed board crawls by board",
		}, []string{"board"}),
		EntriesParsed: f.NewCounter(prometheus.CounterOpts{
			Name: "noticrawl_entries_parsed_total",
			Help: "Total entries parsed from board feeds",
		}),
		NewArticles: f.NewCounter(prometheus.CounterOpts{
			Name: "noticrawl_new_articles_total",
			Help: "Total new articles stored",
		}),
		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "noticrawl_notifications_total",
			Help: "Push notifications by status (sent/failed)",
		}, []string{"status"}),
		TokensCleared: f.NewCounter(prometheus.CounterOpts{
			Name: "noticrawl_push_tokens_cleared_total",
			Help: "Total stale push tokens cleared",
		}),
		LastRunTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: "noticrawl_last_run_timestamp_seconds",
			Help: "Start time of the last completed run",
		}),
		LastRunNewEntries: f.NewGauge(prometheus.GaugeOpts{
			Name: "noticrawl_last_run_new_articles",
			Help: "New articles found by the last completed run",
		}),
	}
}

// RecordRun adds run stats to collectors
func (m *Metrics) RecordRun(stats domain.RunStats) {
	m.RunsTotal.Inc()
	m.RunDuration.Observe(stats.Duration.Seconds())
	for _, b := range stats.FailedBoards {
		m.BoardFailures.WithLabelValues(b).Inc()
	}
	m.EntriesParsed.Add(float64(stats.EntriesParsed))
	m.NewArticles.Add(float64(stats.NewEntries))
	m.Notifications.WithLabelValues("sent").Add(float64(stats.Notifications))
	m.Notifications.WithLabelValues("failed").Add(float64(stats.FailedNotifies))
	m.TokensCleared.Add(float64(stats.TokensCleared))
	m.LastRunTimestamp.Set(float64(stats.StartedAt.Unix()))
	m.LastRunNewEntries.Set(float64(stats.NewEntries))
}
