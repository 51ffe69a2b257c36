// Package metrics exposes Prometheus instrumentation for game sessions.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/snake-odyssey/internal/games/odyssey"
	"github.com/vovakirdan/snake-odyssey/internal/storage"
)

const namespace = "odyssey"

var (
	gamesStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_started_total",
		Help:      "Games started.",
	})
	resets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Games ended by a fatal collision.",
		},
		[]string{"cause"},
	)
	victories = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "victories_total",
		Help:      "Games won.",
	})
	fruitEaten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fruit_eaten_total",
		Help:      "Fruit eaten across all games.",
	})
	bossesSpawned = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bosses_spawned_total",
		Help:      "Bosses placed on milestone levels.",
	})
	highestLevel = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "highest_level",
		Help:      "Highest level reached by any game since startup.",
	})
	activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ssh",
		Name:      "active_sessions",
		Help:      "Connected SSH sessions.",
	})
	storeCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "calls",
			Help:      "Calls processed by the run store.",
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(
		gamesStarted,
		resets,
		victories,
		fruitEaten,
		bossesSpawned,
		highestLevel,
		activeSessions,
		storeCalls,
	)
}

// Handler serves the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// GameStarted counts a new game.
func GameStarted() {
	gamesStarted.Inc()
}

// Observe records the metrics carried by a game event.
func Observe(e odyssey.Event) {
	switch ev := e.(type) {
	case odyssey.FruitEaten:
		fruitEaten.Inc()
	case odyssey.LevelChanged:
		levelReached(ev.Level)
	case odyssey.BossSpawned:
		bossesSpawned.Inc()
	case odyssey.GameReset:
		resets.WithLabelValues(string(ev.Cause)).Inc()
	case odyssey.Victory:
		victories.Inc()
	}
}

var (
	levelMu  sync.Mutex
	maxLevel int
)

// levelReached raises the highest level gauge. Sessions report concurrently.
func levelReached(n int) {
	levelMu.Lock()
	defer levelMu.Unlock()
	if n > maxLevel {
		maxLevel = n
		highestLevel.Set(float64(n))
	}
}

// SessionOpened increments the active session gauge.
func SessionOpened() {
	activeSessions.Inc()
}

// SessionClosed decrements the active session gauge.
func SessionClosed() {
	activeSessions.Dec()
}

// RunStore persists finished runs.
type RunStore interface {
	SaveRun(r storage.RunRecord) (string, error)
}

// InstrumentStore wraps a run store to time its calls.
func InstrumentStore(s RunStore) RunStore { return &instrumented{s} }

func instrument(method string) func() {
	t := prometheus.NewTimer(storeCalls.WithLabelValues(method))
	return func() { t.ObserveDuration() }
}

type instrumented struct{ s RunStore }

func (m *instrumented) SaveRun(r storage.RunRecord) (string, error) {
	defer instrument("SaveRun")()
	return m.s.SaveRun(r)
}
