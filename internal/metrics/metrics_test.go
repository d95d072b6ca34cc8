package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementValidation(true, "none")
	m.IncrementValidation(false, "checksum")
	m.IncrementValidation(false, "checksum")
	m.ObserveScan(true, 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("accepted", "none")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Validations.WithLabelValues("rejected", "checksum")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Scans.WithLabelValues("accepted")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementValidation(true, "none")
		m.ObserveScan(false, 1)
	})
}
