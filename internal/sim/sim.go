// Package sim runs sieges without a terminal: a fixed-step loop, an
// optional autopilot that spends the player's currency, and hooks for
// telemetry and metrics.
package sim

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/games/siege"
)

// Options configures a Runner.
type Options struct {
	Config   config.SiegeConfig
	Seed     int64
	TickRate int     // ticks per simulated second, default 60
	Seconds  float64 // simulated seconds to run; 0 runs until game over
	MaxTicks uint64  // hard stop, 0 for none

	// Autopilot buys units and upgrades once per simulated second.
	Autopilot bool

	Listener siege.Listener
	Logger   *log.Logger
	Strict   bool

	// Observer is called once per simulated second with the HUD and the
	// wall time of the last tick. It may be nil.
	Observer func(hud siege.HUD, tick time.Duration)
}

// Result summarizes a finished run.
type Result struct {
	Seed       int64
	Ticks      uint64
	SimSeconds float64
	Wave       int
	Kills      int
	Money      int
	GameOver   bool
	Purchases  int
	Upgrades   int
	Hash       uint64
	Wall       time.Duration
}

// Runner drives one World.
type Runner struct {
	opts  Options
	world *siege.World
	pilot *Autopilot
}

// NewRunner builds the World for opts.
func NewRunner(opts Options) *Runner {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	r := &Runner{opts: opts}
	r.world = siege.NewWorld(siege.Options{
		Config:   opts.Config,
		Seed:     opts.Seed,
		Logger:   opts.Logger,
		Listener: opts.Listener,
		Strict:   opts.Strict,
	})
	if opts.Autopilot {
		r.pilot = NewAutopilot(DefaultPolicy())
	}
	return r
}

// World exposes the simulation.
func (r *Runner) World() *siege.World {
	return r.world
}

// Run steps the world until the time budget is spent, the castle falls or
// ctx is cancelled. Cancellation is not an error; the partial result is
// returned.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.opts.Seconds <= 0 && r.opts.MaxTicks == 0 && ctx.Done() == nil {
		return Result{}, fmt.Errorf("sim: unbounded run needs seconds, max ticks or a cancellable context")
	}

	dt := 1 / float64(r.opts.TickRate)
	perSecond := uint64(r.opts.TickRate)
	start := time.Now()
	res := Result{Seed: r.opts.Seed}

	for !r.world.GameOver() {
		if r.opts.Seconds > 0 && r.world.Elapsed() >= r.opts.Seconds-dt/2 {
			break
		}
		if r.opts.MaxTicks > 0 && r.world.Tick() >= r.opts.MaxTicks {
			break
		}
		if err := ctx.Err(); err != nil {
			r.opts.Logger.Info("simulation interrupted", "tick", r.world.Tick())
			break
		}

		tickStart := time.Now()
		r.world.Step(dt)
		tickWall := time.Since(tickStart)

		if r.world.Tick()%perSecond == 0 {
			if r.pilot != nil {
				r.pilot.Act(r.world)
			}
			if r.opts.Observer != nil {
				r.opts.Observer(r.world.HUD(), tickWall)
			}
		}
	}

	hud := r.world.HUD()
	snap := r.world.Snapshot()
	res.Ticks = r.world.Tick()
	res.SimSeconds = r.world.Elapsed()
	res.Wave = hud.Wave
	res.Kills = hud.Kills
	res.Money = hud.Money
	res.GameOver = hud.GameOver
	res.Hash = snap.Hash()
	res.Wall = time.Since(start)
	if r.pilot != nil {
		res.Purchases = r.pilot.Purchases
		res.Upgrades = r.pilot.Upgrades
	}
	if r.opts.Observer != nil {
		r.opts.Observer(hud, 0)
	}
	return res, nil
}
