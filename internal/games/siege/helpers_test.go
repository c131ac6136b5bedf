package siege

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/geom"
)

// quietConfig disables trees, trickle, waves and the castle launcher so a
// test controls every spawn.
func quietConfig() config.SiegeConfig {
	cfg := config.DefaultSiegeConfig()
	cfg.Trees.InitialDensity = 0
	cfg.Trees.GrowthDensity = 0
	cfg.Director.TricklePeriod = math.Inf(1)
	cfg.Director.FirstWaveDelay = math.Inf(1)
	cfg.Castle.AttackRange = 0
	return cfg
}

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) last(kind EventKind) (Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == kind {
			return r.events[i], true
		}
	}
	return Event{}, false
}

func newTestWorld(t *testing.T, cfg config.SiegeConfig) (*World, *recorder) {
	t.Helper()
	rec := &recorder{}
	w := NewWorld(Options{Config: cfg, Seed: 42, Listener: rec, Strict: true})
	return w, rec
}

func mustEntity(t *testing.T, w *World, id EntityID) *Entity {
	t.Helper()
	e, ok := w.byID[id]
	require.True(t, ok, "entity %d not found", id)
	return e
}

// hold stops an entity so it stays where the test put it.
func hold(t *testing.T, w *World, id EntityID) *Entity {
	t.Helper()
	e := mustEntity(t, w, id)
	e.Velocity = geom.Vector{}
	w.engine.SetVelocity(e.proxy, e.Velocity)
	return e
}

func spawnMonster(t *testing.T, w *World, typ Type, x, y float64) EntityID {
	t.Helper()
	id, err := w.SpawnMonster(typ, geom.V(x, y))
	require.NoError(t, err)
	return id
}

func spawnUnit(t *testing.T, w *World, typ Type, x, y float64) EntityID {
	t.Helper()
	id, err := w.SpawnUnit(typ, geom.V(x, y))
	require.NoError(t, err)
	return id
}

func steps(w *World, n int, dt float64) {
	for i := 0; i < n; i++ {
		w.Step(dt)
	}
}

func entitiesOfType(w *World, typ Type) []EntityView {
	var out []EntityView
	for _, e := range w.Entities() {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}
