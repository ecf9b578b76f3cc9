package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"sendsong/internal/db"
)

// Title resolution outcomes.
const (
	OutcomeResolved = "resolved"
	OutcomeCached   = "cached"
	OutcomeMiss     = "miss"
	OutcomeError    = "error"
	OutcomeDisabled = "disabled"
)

var (
	sentSongsDesc = prometheus.NewDesc(
		"sendsong_sent_songs",
		"Number of sent songs currently stored",
		nil,
		nil,
	)

	sharesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sendsong_shares_total",
		Help: "Total songs shared through this instance",
	})

	titleResolutionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sendsong_title_resolutions_total",
		Help: "Total title resolution attempts by outcome",
	}, []string{"outcome"})
)

// SentSongCollector is a custom Prometheus collector that reads the stored
// song count from the database on each scrape.
type SentSongCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *SentSongCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- sentSongsDesc
}

// Collect queries the database for the sent-song count and emits it.
func (c *SentSongCollector) Collect(ch chan<- prometheus.Metric) {
	count, err := c.db.CountSentSongs(context.Background())
	if err != nil {
		slog.Error("failed to collect sent song metrics", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(sentSongsDesc, prometheus.GaugeValue, float64(count))
}

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(&SentSongCollector{db: database})
		prometheus.MustRegister(sharesTotal, titleResolutionsTotal)
	})
}

// RecordShare counts a successfully persisted share.
func RecordShare() {
	sharesTotal.Inc()
}

// RecordTitleResolution counts a title resolution attempt by outcome.
func RecordTitleResolution(outcome string) {
	titleResolutionsTotal.WithLabelValues(outcome).Inc()
}
