package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersRecord(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncCuration("Deep Rock Galactic", "ok")
	m.IncCuration("Deep Rock Galactic", "ok")
	m.AddPoolMutations("Deep Rock Galactic", "discard", 5)
	m.AddPoolMutations("Deep Rock Galactic", "discard", 0)
	m.IncClamp("Pokemon Legends Arceus", "wisps_total")
	m.IncRung("Pokemon Legends Arceus", "warps")
	m.ObservePhase("Deep Rock Galactic", "regions", time.Now())
	m.ObservePlayers(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Curations.WithLabelValues("Deep Rock Galactic", "ok")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.PoolMutations.WithLabelValues("Deep Rock Galactic", "discard")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Clamps.WithLabelValues("Pokemon Legends Arceus", "wisps_total")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LadderRungs.WithLabelValues("Pokemon Legends Arceus", "warps")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncCuration("g", "ok")
		m.AddPoolMutations("g", "lock", 1)
		m.IncClamp("g", "o")
		m.IncRung("g", "r")
		m.ObservePhase("g", "p", time.Now())
		m.ObservePlayers(1)
	})
}
