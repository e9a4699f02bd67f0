package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.RecordCreated("workout")
	m.RecordCreated("workout")
	m.RecordCreated("profile")
	m.InsightsComputed()
	m.CounterRequests.WithLabelValues("GET", "/", "200").Inc()
	m.HistRequestDuration.WithLabelValues("/").Observe(0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterRecordsCreated.WithLabelValues("workout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRecordsCreated.WithLabelValues("profile")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterInsights))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "fitness_test_server_records_created")
	assert.Contains(t, names, "fitness_test_server_request_duration_seconds")
}

func TestManager_NilSafe(t *testing.T) {
	var m *Manager
	assert.NotPanics(t, func() {
		m.RecordCreated("workout")
		m.InsightsComputed()
	})
}
