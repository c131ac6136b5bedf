package siege

import (
	"math"

	"github.com/vovakirdan/slime-siege/internal/geom"
)

// Snapshot captures the deterministic state of a World.
type Snapshot struct {
	Tick      uint64
	Wave      int
	Remaining float64
	Money     int
	Kills     int
	Bounds    geom.Rect
	RNG       uint64
	Entities  []EntityView
}

// Snapshot returns the current state.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:      w.tick,
		Wave:      w.director.wave,
		Remaining: w.director.remaining,
		Money:     w.player.Money,
		Kills:     w.player.Kills,
		Bounds:    w.Bounds(),
		RNG:       w.rng.State(),
		Entities:  w.Entities(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Wave)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Money) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Remaining)
	h = h*31 + hashRect(snap.Bounds)
	h = h*31 + snap.RNG
	for _, e := range snap.Entities {
		h = h*31 + uint64(e.ID)
		h = h*31 + uint64(e.Kind)
		h = h*31 + hashRect(e.HitBox)
		h = h*31 + math.Float64bits(e.Velocity.X)
		h = h*31 + math.Float64bits(e.Velocity.Y)
		h = h*31 + math.Float64bits(e.HitPoints)
	}
	return h
}

func hashRect(r geom.Rect) uint64 {
	h := math.Float64bits(r.Center.X)
	h = h*31 + math.Float64bits(r.Center.Y)
	h = h*31 + math.Float64bits(r.Size.X)
	h = h*31 + math.Float64bits(r.Size.Y)
	return h
}
