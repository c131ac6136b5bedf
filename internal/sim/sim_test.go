package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/games/siege"
)

func TestRunSecondsBudget(t *testing.T) {
	r := NewRunner(Options{Config: config.DefaultSiegeConfig(), Seed: 11, Seconds: 5, Strict: true})

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	require.False(t, res.GameOver)
	assert.Equal(t, uint64(300), res.Ticks)
	assert.InDelta(t, 5.0, res.SimSeconds, 1e-6)
	assert.Equal(t, int64(11), res.Seed)
	assert.NotZero(t, res.Hash)
}

func TestRunMaxTicks(t *testing.T) {
	r := NewRunner(Options{Config: config.DefaultSiegeConfig(), Seed: 1, MaxTicks: 42})

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), res.Ticks)
}

func TestRunIsDeterministic(t *testing.T) {
	run := func(seed int64) Result {
		r := NewRunner(Options{Config: config.DefaultSiegeConfig(), Seed: seed, Seconds: 20, Autopilot: true})
		res, err := r.Run(context.Background())
		require.NoError(t, err)
		return res
	}

	a, b := run(99), run(99)
	assert.Equal(t, a.Hash, b.Hash)
	assert.Equal(t, a.Ticks, b.Ticks)
	assert.Equal(t, a.Kills, b.Kills)
	assert.Equal(t, a.Purchases, b.Purchases)
}

func TestRunUnboundedIsRejected(t *testing.T) {
	r := NewRunner(Options{Config: config.DefaultSiegeConfig()})
	_, err := r.Run(context.Background())
	assert.Error(t, err)
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(Options{Config: config.DefaultSiegeConfig(), Seed: 2})
	res, err := r.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Ticks)
}

func TestRunObserverOncePerSecond(t *testing.T) {
	var huds []siege.HUD
	r := NewRunner(Options{
		Config:  config.DefaultSiegeConfig(),
		Seed:    4,
		Seconds: 3,
		Observer: func(h siege.HUD, _ time.Duration) {
			huds = append(huds, h)
		},
	})

	_, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, huds, 4, "three whole seconds plus the final report")
	assert.InDelta(t, 1.0, huds[0].Elapsed, 1e-6)
}

func TestAutopilotSpendsOncePerSecond(t *testing.T) {
	r := NewRunner(Options{Config: config.DefaultSiegeConfig(), Seed: 8, Seconds: 5, Autopilot: true, Strict: true})

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Purchases)
	assert.Zero(t, res.Upgrades)
	assert.NotEmpty(t, r.World().Player().Units())
}

func TestAutopilotPriorities(t *testing.T) {
	cfg := config.DefaultSiegeConfig()
	w := siege.NewWorld(siege.Options{Config: cfg, Seed: 3})
	pilot := NewAutopilot(Policy{Workers: 1, Swordsmen: 1, UpgradeGap: 0})

	count := func(typ siege.Type) int {
		n := 0
		for _, e := range w.Entities() {
			if e.Type == typ {
				n++
			}
		}
		return n
	}

	pilot.Act(w)
	assert.Equal(t, 1, count(siege.TypeWorker))
	pilot.Act(w)
	assert.Equal(t, 1, count(siege.TypeSwordsman))
	pilot.Act(w)
	assert.Equal(t, 2, w.Player().TowerSpeedLevel, "speed is the cheaper upgrade")
	assert.Equal(t, 2, pilot.Purchases)
	assert.Equal(t, 1, pilot.Upgrades)
}

func TestAutopilotBroke(t *testing.T) {
	cfg := config.DefaultSiegeConfig()
	cfg.Player.Money = 0
	w := siege.NewWorld(siege.Options{Config: cfg, Seed: 3})
	pilot := NewAutopilot(DefaultPolicy())

	pilot.Act(w)
	assert.Zero(t, pilot.Purchases)
	assert.Zero(t, pilot.Upgrades)
	assert.Empty(t, w.Player().Units())
}
