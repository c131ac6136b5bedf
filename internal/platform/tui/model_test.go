package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/slime-siege/internal/core"
	"github.com/vovakirdan/slime-siege/internal/registry"
	"github.com/vovakirdan/slime-siege/internal/storage"
)

// fakeGame ends its run after overAfter steps and restarts on ActionRestart.
type fakeGame struct {
	id        string
	overAfter int
	steps     int
	resets    int
	inputs    []core.InputFrame
}

func (g *fakeGame) ID() string    { return g.id }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.inputs = append(g.inputs, frame)
	if in.Has(core.ActionRestart) {
		g.steps = 0
		return core.StepResult{State: g.State()}
	}
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, g.id) }

func (g *fakeGame) State() core.GameState {
	return core.GameState{
		Wave:       g.steps / 2,
		GameOver:   g.overAfter > 0 && g.steps >= g.overAfter,
		Kills:      g.steps,
		Money:      10,
		SimSeconds: float64(g.steps) / 60,
	}
}

func init() {
	registry.Register(registry.GameInfo{ID: "tui-fake", Title: "Fake Siege", Description: "test mode"},
		func() registry.Game { return &fakeGame{id: "tui-fake", overAfter: 3} })
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModelForwardsActions(t *testing.T) {
	game := &fakeGame{id: "tui-fake"}
	m := NewModel(game, nil, testConfig(), "").WithLogger(quietLogger())

	m = update(t, m, runeKey("q"))
	m = update(t, m, runeKey("e"))
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	require.Len(t, game.inputs, 2)
	assert.True(t, game.inputs[0].Has(core.ActionBuyWorker))
	assert.True(t, game.inputs[0].Has(core.ActionUpgradeSpeed))
	assert.Empty(t, game.inputs[1].Actions, "input is cleared after each tick")
}

func TestModelSavesRunOnce(t *testing.T) {
	store := testStore(t)
	game := &fakeGame{id: "tui-fake", overAfter: 4}
	m := NewModel(game, store, testConfig(), "ann").WithLogger(quietLogger())

	for range 10 {
		m = update(t, m, TickMsg{})
	}
	require.True(t, m.State().GameOver)
	require.NotEmpty(t, m.LastRunID())

	runs, err := store.TopRuns("tui-fake", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "ann", runs[0].Player)
	assert.Equal(t, int64(5), runs[0].Seed)
	assert.Equal(t, 2, runs[0].Waves)
	assert.Equal(t, 4, runs[0].Kills)

	// A restart arms the save again
	m = update(t, m, runeKey("n"))
	for range 10 {
		m = update(t, m, TickMsg{})
	}
	runs, err = store.TopRuns("tui-fake", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestModelBackAndQuit(t *testing.T) {
	game := &fakeGame{id: "tui-fake"}
	m := NewModel(game, nil, testConfig(), "")

	back := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.BackToMenu())
	assert.False(t, back.IsQuitting())
	assert.Empty(t, back.View())

	// No further steps after leaving
	_ = update(t, back, TickMsg{})
	assert.Empty(t, game.inputs)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(Model).IsQuitting())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &fakeGame{id: "tui-fake"}
	m := NewModel(game, nil, testConfig(), "")
	m.Init()
	require.Equal(t, 1, game.resets)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 1, game.resets)
	assert.Contains(t, m.View(), "tui-fake")
}
