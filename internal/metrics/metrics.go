package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks curation phase timings, pool mutations and clamps.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	PhaseDuration  *prometheus.HistogramVec
	Curations      *prometheus.CounterVec
	PoolMutations  *prometheus.CounterVec
	Clamps         *prometheus.CounterVec
	LadderRungs    *prometheus.CounterVec
	PlayersPerSeed prometheus.Histogram
}

// New registers all curation metrics with reg. Pass prometheus.NewRegistry()
// in tests to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PhaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "manuals_curation_phase_duration_seconds",
			Help:    "Duration of each curation phase",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"game", "phase"}),
		Curations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "manuals_curations_total",
			Help: "Curation runs by game and outcome",
		}, []string{"game", "outcome"}),
		PoolMutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "manuals_pool_mutations_total",
			Help: "Items removed from pools by kind (precollect, discard, lock)",
		}, []string{"game", "kind"}),
		Clamps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "manuals_option_clamps_total",
			Help: "Requested quantities clamped to what the world can hold",
		}, []string{"game", "option"}),
		LadderRungs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "manuals_ladder_rungs_total",
			Help: "Fallback precollection rungs applied",
		}, []string{"game", "rung"}),
		PlayersPerSeed: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "manuals_players_per_seed",
			Help:    "Number of players generated together",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		}),
	}
}

func (m *Metrics) ObservePhase(game, phase string, start time.Time) {
	if m == nil {
		return
	}
	m.PhaseDuration.WithLabelValues(game, phase).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncCuration(game, outcome string) {
	if m == nil {
		return
	}
	m.Curations.WithLabelValues(game, outcome).Inc()
}

func (m *Metrics) AddPoolMutations(game, kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.PoolMutations.WithLabelValues(game, kind).Add(float64(n))
}

func (m *Metrics) IncClamp(game, option string) {
	if m == nil {
		return
	}
	m.Clamps.WithLabelValues(game, option).Inc()
}

func (m *Metrics) IncRung(game, rung string) {
	if m == nil {
		return
	}
	m.LadderRungs.WithLabelValues(game, rung).Inc()
}

func (m *Metrics) ObservePlayers(n int) {
	if m == nil {
		return
	}
	m.PlayersPerSeed.Observe(float64(n))
}
