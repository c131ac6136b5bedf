package siege

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/core"
	"github.com/vovakirdan/slime-siege/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"siege", "siege_easy", "siege_hard"} {
		g, err := registry.Create(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, g.ID())
	}
	assert.Equal(t, config.DifficultyHard, NewWithPreset(config.DifficultyHard).Preset())
}

func TestGameStepAppliesActions(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionBuyWorker)
	in.Set(core.ActionSpeed3)
	res := g.Step(in)

	assert.Equal(t, 450, res.State.Money)
	assert.Equal(t, 3, g.World().Speed())
	assert.Equal(t, uint64(3), g.World().Tick())

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	res = g.Step(in)
	assert.True(t, res.State.Paused)
	tick := g.World().Tick()
	g.Step(core.NewInputFrame())
	assert.Equal(t, tick, g.World().Tick())

	in = core.NewInputFrame()
	in.Set(core.ActionRestart)
	res = g.Step(in)
	assert.False(t, res.State.Paused)
	assert.Equal(t, 500, res.State.Money)
	assert.Equal(t, uint64(0), g.World().Tick())
}

func TestGameUpgradeActions(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	in := core.NewInputFrame()
	in.Set(core.ActionUpgradeSpeed)
	in.Set(core.ActionUpgradeDamage)
	g.Step(in)

	p := g.World().Player()
	assert.Equal(t, 2, p.TowerSpeedLevel)
	assert.Equal(t, 2, p.TowerDamageLevel)
	assert.Equal(t, 500-50-75, p.Money)
}

func TestGamePresetsChangeEconomy(t *testing.T) {
	easy := NewWithPreset(config.DifficultyEasy)
	easy.Reset(testRuntime())
	hard := NewWithPreset(config.DifficultyHard)
	hard.Reset(testRuntime())

	assert.Greater(t, easy.State().Money, hard.State().Money)
}

func TestGameStateReportsGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.World().castle().Tower.HitPoints = 0

	res := g.Step(core.NewInputFrame())
	assert.True(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Wave)
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Wave 0")
	assert.Contains(t, screen.Row(0), "Gold 500")
	assert.Contains(t, screen.Row(23), "[Q] Worker 50")
	assert.Contains(t, screen.String(), "█", "castle is drawn")
	assert.Contains(t, screen.String(), "♣", "trees are drawn")
	assert.Equal(t, '┌', screen.Get(0, 1))
}

func TestRenderOverlays(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	g.World().TogglePause()
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.World().TogglePause()
	g.World().ToggleDebug()
	screen.Clear()
	g.Render(screen)
	assert.Contains(t, screen.Row(22), "entities")

	g.World().castle().Tower.HitPoints = 0
	g.Step(core.NewInputFrame())
	screen.Clear()
	g.Render(screen)
	assert.Contains(t, screen.String(), "THE CASTLE HAS FALLEN")
}

func TestRenderSmallScreen(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(20, 6)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Screen too small"))
}

func TestViewportMapsCorners(t *testing.T) {
	w, _ := newTestWorld(t, quietConfig())
	vp := viewport{bounds: w.Bounds(), area: core.NewRect(1, 2, 78, 20)}

	x, y := vp.cell(w.Bounds().Center.Sub(w.Bounds().Size.Scale(0.5)))
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)

	x, y = vp.cell(w.Bounds().Center.Add(w.Bounds().Size.Scale(0.5)))
	assert.Equal(t, 78, x, "right edge clamps to the last column")
	assert.Equal(t, 21, y)
}
