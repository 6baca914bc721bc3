package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssetsFetchedTotal      *prometheus.CounterVec
	AssetFetchDuration      prometheus.Histogram
	DocumentsConvertedTotal prometheus.Counter
)

var initOnce sync.Once

// Init registers the collectors on the default registry. Safe to call
// more than once.
func Init() {
	initOnce.Do(func() {
		AssetsFetchedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assets_fetched_total",
				Help: "Total number of asset fetch attempts.",
			},
			[]string{"status"}, // status: inlined, fallback
		)

		AssetFetchDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "asset_fetch_duration_seconds",
				Help:    "Duration of individual asset fetches.",
				Buckets: prometheus.DefBuckets,
			},
		)

		DocumentsConvertedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "documents_converted_total",
				Help: "Total number of HTML documents converted.",
			},
		)
	})
}
