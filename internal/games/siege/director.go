package siege

import (
	"math"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/geom"
)

// Phase is the director's wave state. Trickle spawns run in both phases.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseInWave
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseInWave {
		return "in_wave"
	}
	return "idle"
}

// Director paces monster spawns: a periodic trickle scaled by the wave
// number plus timed waves whose strength grows with each wave.
type Director struct {
	cfg config.DirectorConfig

	wave         int
	inWave       bool
	timer        float64
	strength     float64
	remaining    float64
	sinceTrickle float64
	waveStart    float64
	waveKills    int
}

func newDirector(cfg config.DirectorConfig) Director {
	return Director{
		cfg:   cfg,
		timer: cfg.FirstWaveDelay,
		// The first trickle fires on the first tick.
		sinceTrickle: cfg.TricklePeriod,
	}
}

// WaveStrength returns the strength budget of wave n.
func WaveStrength(cfg config.DirectorConfig, n int) float64 {
	return math.Floor(math.Pow(float64(n+1), cfg.StrengthExponent) + float64(n)*cfg.StrengthPerWave + cfg.StrengthBase)
}

// Phase returns the current wave state.
func (d Director) Phase() Phase {
	if d.inWave {
		return PhaseInWave
	}
	return PhaseIdle
}

// Wave returns the number of waves started since restart.
func (d Director) Wave() int { return d.wave }

// Timer returns seconds until the next wave, or until the current wave times out.
func (d Director) Timer() float64 { return d.timer }

// Strength returns the total strength of the current or last wave.
func (d Director) Strength() float64 { return d.strength }

// Remaining returns the strength of the current wave not yet killed.
func (d Director) Remaining() float64 { return d.remaining }

func (d *Director) onKill(strength float64) {
	if !d.inWave {
		return
	}
	d.remaining -= strength
	d.waveKills++
}

// updateDirector runs the trickle, starts a wave when the timer expires and
// ends it on clearance or timeout.
func (w *World) updateDirector(dt float64) {
	d := &w.director

	d.sinceTrickle += dt
	if d.sinceTrickle > d.cfg.TricklePeriod {
		d.sinceTrickle -= d.cfg.TricklePeriod
		w.spawnStrength(float64(d.wave + 1))
	}

	d.timer -= dt
	if d.timer <= 0 && !d.inWave {
		d.inWave = true
		d.timer = d.cfg.WaveDuration
		d.wave++
		d.strength = WaveStrength(d.cfg, d.wave)
		d.remaining = d.strength
		d.waveStart = w.elapsed
		d.waveKills = 0
		w.logger.Debug("wave started", "wave", d.wave, "strength", d.strength)
		w.emit(Event{Kind: EventWaveStart, Strength: d.strength})
		w.spawnStrength(d.strength)
	}

	if d.inWave && (d.remaining <= 0 || d.timer <= 0) {
		cleared := d.remaining <= 0
		d.inWave = false
		d.timer = math.Min(d.cfg.CooldownCap, d.timer+d.cfg.CooldownBonus)
		w.logger.Debug("wave ended", "wave", d.wave, "cleared", cleared, "remaining", d.remaining)
		w.emit(Event{
			Kind:      EventWaveEnd,
			Strength:  d.remaining,
			Cleared:   cleared,
			Amount:    w.elapsed - d.waveStart,
			WaveKills: d.waveKills,
		})
		if every := w.cfg.World.GrowthEveryWaves; every > 0 && d.wave%every == 0 {
			w.growWorld()
		}
	}
}

// growWorld scales the world about its center and plants trees in the new
// border ring.
func (w *World) growWorld() {
	old := w.engine.World()
	grown := geom.FromCenterAndSize(old.Center, old.Size.Scale(w.cfg.World.GrowthMultiplier))
	w.invariant(grown.ContainsRect(old), "world shrank", "old", old, "new", grown)
	w.engine.SetWorld(grown)
	planted := w.spawnTrees(geom.Except(grown, old), w.cfg.Trees.GrowthDensity)
	w.logger.Debug("world grew", "width", grown.Width(), "height", grown.Height(), "trees", planted)
	w.emit(Event{Kind: EventWorldGrow, Width: grown.Width(), Height: grown.Height()})
}
