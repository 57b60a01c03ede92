package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSync(SyncUpdated, 2, time.Now())
	m.ObserveSync(SyncCreated, 0, time.Now())
	m.IncNotification(NotificationQueued)
	m.IncNotification(NotificationSkipped)
	m.IncNotification(NotificationSkipped)
	m.IncRetirement("repaired")

	assert.InDelta(t, 1, testutil.ToFloat64(m.SyncTotal.WithLabelValues(SyncUpdated)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.RecordsUpdated), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(NotificationSkipped)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RetirementsTotal.WithLabelValues("repaired")), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveSync(SyncFailed, 0, time.Now())
		m.IncNotification(NotificationFailed)
		m.IncRetirement("failed")
		m.ObserveSweep(time.Now())
	})
}

func TestNewRegistry_Gathers(t *testing.T) {
	reg := NewRegistry()
	New(reg)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
