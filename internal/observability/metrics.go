package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Failure reasons used as the "reason" label.
const (
	ReasonNilTable       = "nil_table"
	ReasonKeyNotFound    = "key_not_found"
	ReasonLengthMismatch = "length_mismatch"
	ReasonKindMismatch   = "kind_mismatch"
	ReasonOther          = "other"
)

var (
	registerOnce sync.Once

	tableGetFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "termparam",
			Subsystem: "table",
			Name:      "get_failures_total",
			Help:      "Parameter table reads that failed, by reason.",
		},
		[]string{"reason"},
	)
	bundleOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "termparam",
			Subsystem: "bundle",
			Name:      "ops_total",
			Help:      "Bundle pack/parse operations.",
		},
		[]string{"bundle", "op", "result"},
	)
	itemListBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "termparam",
			Subsystem: "itemlist",
			Name:      "size_bytes",
			Help:      "Encoded or decoded parameter item list size in bytes.",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 8),
		},
		[]string{"direction"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(tableGetFailures, bundleOps, itemListBytes)
	})
}

func RecordGetFailure(reason string) {
	RegisterMetrics()
	tableGetFailures.WithLabelValues(reason).Inc()
}

func RecordBundleOp(bundle, op string, err error) {
	RegisterMetrics()
	result := "ok"
	if err != nil {
		result = "error"
	}
	bundleOps.WithLabelValues(bundle, op, result).Inc()
}

func RecordItemList(direction string, size int) {
	RegisterMetrics()
	itemListBytes.WithLabelValues(direction).Observe(float64(size))
}

// GetFailures returns the counter for reason so callers can read it back.
func GetFailures(reason string) prometheus.Counter {
	return tableGetFailures.WithLabelValues(reason)
}

func BundleOps(bundle, op, result string) prometheus.Counter {
	return bundleOps.WithLabelValues(bundle, op, result)
}
