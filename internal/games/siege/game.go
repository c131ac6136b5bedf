package siege

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/core"
	"github.com/vovakirdan/slime-siege/internal/registry"
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset is the preset used by the default mode.
var difficultyPreset = config.DifficultyNormal

var (
	logger   = log.New(io.Discard)
	listener Listener
	strict   bool
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset used by the "siege" mode.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger handed to new worlds.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetListener sets the event listener handed to new worlds.
func SetListener(l Listener) {
	listener = l
}

// SetStrict makes new worlds panic on invariant violations.
func SetStrict(on bool) {
	strict = on
}

// Game adapts a World to the platform's fixed-tick game interface.
type Game struct {
	id     string
	title  string
	preset config.DifficultyPreset // empty uses the CLI preset

	world   *World
	runtime core.RuntimeConfig
}

// New creates the default mode, using the CLI difficulty preset.
func New() *Game {
	return &Game{id: "siege", title: "Slime Siege"}
}

// NewWithPreset creates a mode pinned to a difficulty preset.
func NewWithPreset(preset config.DifficultyPreset) *Game {
	return &Game{
		id:     "siege_" + string(preset),
		title:  "Slime Siege (" + string(preset) + ")",
		preset: preset,
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Preset returns the difficulty the next Reset will use.
func (g *Game) Preset() config.DifficultyPreset {
	if g.preset != "" {
		return g.preset
	}
	return difficultyPreset
}

// LoadConfig returns the configuration for a preset, falling back to the
// built-in defaults when the config cannot be loaded.
func LoadConfig(preset config.DifficultyPreset) config.SiegeConfig {
	cfg, err := config.LoadSiege(configPath)
	if err != nil {
		logger.Warn("using built-in config", "err", err)
		cfg = config.DefaultSiegeConfig()
	}
	config.ApplySiegePreset(&cfg, preset)
	return cfg
}

// Reset starts a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(Options{
		Config:   LoadConfig(g.Preset()),
		Seed:     runtime.Seed,
		Logger:   logger,
		Listener: listener,
		Strict:   strict,
	})
}

// World exposes the simulation.
func (g *Game) World() *World {
	return g.world
}

// Step applies the frame's actions and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(g.runtime)
	}
	w := g.world

	if in.Has(core.ActionRestart) {
		w.Restart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		w.TogglePause()
	}
	if in.Has(core.ActionToggleDebug) {
		w.ToggleDebug()
	}
	for i, a := range core.SpeedActions {
		if in.Has(a) {
			w.SetSpeed(i + 1)
		}
	}
	if in.Has(core.ActionBuyWorker) {
		w.BuyWorker()
	}
	if in.Has(core.ActionBuySwordsman) {
		w.BuySwordsman()
	}
	if in.Has(core.ActionUpgradeSpeed) {
		w.UpgradeTowerSpeed()
	}
	if in.Has(core.ActionUpgradeDamage) {
		w.UpgradeTowerDamage()
	}

	w.Step(1 / float64(max(1, g.runtime.TickRate)))
	return core.StepResult{State: g.State()}
}

// Render draws the world.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		return
	}
	g.world.Render(dst)
}

// State summarises the run for the platform.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	w := g.world
	return core.GameState{
		Wave:       w.director.wave,
		GameOver:   w.over,
		Paused:     w.paused,
		Kills:      w.player.Kills,
		Money:      w.player.Money,
		SimSeconds: w.elapsed,
	}
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "siege",
		Title:       "Slime Siege",
		Description: "Defend the castle; difficulty follows --difficulty",
	}, func() registry.Game {
		return New()
	})
	for _, p := range []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyHard} {
		registry.Register(registry.GameInfo{
			ID:          "siege_" + string(p),
			Title:       "Slime Siege (" + string(p) + ")",
			Description: "Defend the castle on " + string(p) + " difficulty",
		}, func() registry.Game {
			return NewWithPreset(p)
		})
	}
}
