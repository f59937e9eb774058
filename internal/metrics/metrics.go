// Package metrics defines the Prometheus instruments of the search path.
//
// Instruments are registered on a caller-supplied registry rather than the
// global default, so every App (and every test) owns its own set.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Search outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeParseError   = "parse_error"
	OutcomeCompileError = "compile_error"
)

type Metrics struct {
	// SearchesTotal counts handled queries by outcome.
	SearchesTotal *prometheus.CounterVec
	// MatchesPerSearch observes the number of matches of successful searches.
	MatchesPerSearch prometheus.Histogram
	// ScanDuration is the time spent compiling and scanning one query.
	ScanDuration prometheus.Histogram
	// CorpusRecords is the number of records in the loaded snapshot.
	CorpusRecords prometheus.Gauge
}

// New registers the search instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardsearch_searches_total",
				Help: "Total number of handled queries",
			},
			[]string{"outcome"},
		),
		MatchesPerSearch: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cardsearch_matches_per_search",
				Help:    "Number of matching cards per successful search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		ScanDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cardsearch_scan_duration_seconds",
				Help:    "Query compile and scan latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		CorpusRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "cardsearch_corpus_records",
				Help: "Number of records in the loaded corpus",
			},
		),
	}
}

// ObserveSearch records one handled query.
func (m *Metrics) ObserveSearch(outcome string, matches int, elapsed time.Duration) {
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	m.ScanDuration.Observe(elapsed.Seconds())
	if outcome == OutcomeOK {
		m.MatchesPerSearch.Observe(float64(matches))
	}
}

// WriteText writes every metric family of g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
