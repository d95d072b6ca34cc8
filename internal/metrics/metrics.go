package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for IBAN validation and scan sessions.
type Metrics struct {
	// Validation outcomes by result and rejection reason
	Validations *prometheus.CounterVec

	// Scan outcomes by result
	Scans *prometheus.CounterVec

	// Frames consumed before a scan finished
	ScanFrames prometheus.Histogram
}

// New registers all scanner metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iban_validations_total",
			Help: "Total IBAN validations by result and rejection reason",
		}, []string{"result", "reason"}), // result: "accepted", "rejected"

		Scans: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iban_scans_total",
			Help: "Total scan sessions by result",
		}, []string{"result"}),

		ScanFrames: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "iban_scan_frames",
			Help:    "Recognized frames consumed per scan session",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 64},
		}),
	}
}

// IncrementValidation records a single validator decision.
func (m *Metrics) IncrementValidation(accepted bool, reason string) {
	if m != nil {
		m.Validations.WithLabelValues(resultLabel(accepted), reason).Inc()
	}
}

// ObserveScan records a finished scan session.
func (m *Metrics) ObserveScan(accepted bool, frames int) {
	if m != nil {
		m.Scans.WithLabelValues(resultLabel(accepted)).Inc()
		m.ScanFrames.Observe(float64(frames))
	}
}

func resultLabel(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}
