package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the metrics collected while reading the directory documents.
// It includes counters for document reads, decoded records and contact lookups,
// and a histogram for read duration.
type Metrics struct {
	Reads          *prometheus.CounterVec
	ReadDuration   *prometheus.HistogramVec
	RecordsDecoded *prometheus.CounterVec
	ContactLookups *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance and registers every collector
// with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Reads: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mnemosyne_reads_total",
			Help: "Total number of document reads, by document and outcome.",
		}, []string{"document", "status"}),
		ReadDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mnemosyne_read_duration_seconds",
			Help:    "Time spent reading and decoding a document.",
			Buckets: prometheus.DefBuckets,
		}, []string{"document"}), // document: 'employees', 'contacts'
		RecordsDecoded: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mnemosyne_records_decoded_total",
			Help: "Total number of records decoded from documents",
		}, []string{"document"}),
		ContactLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mnemosyne_contact_lookups_total",
			Help: "Total contact lookups by result: found, absent or error.",
		}, []string{"result"}),
	}

	for _, result := range []string{"found", "absent", "error"} {
		metrics.ContactLookups.WithLabelValues(result)
	}

	return metrics
}
