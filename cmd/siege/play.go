package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slime-siege/internal/core"
	"github.com/vovakirdan/slime-siege/internal/games/siege"
	"github.com/vovakirdan/slime-siege/internal/platform/tui"
	"github.com/vovakirdan/slime-siege/internal/registry"
	"github.com/vovakirdan/slime-siege/internal/storage"
	"github.com/vovakirdan/slime-siege/internal/telemetry"
)

var flagPlayTelemetry string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a siege in the specified mode (default: siege).

Controls:
  Q          - Buy a worker (harvests trees for gold)
  W          - Buy a swordsman
  E          - Upgrade tower speed
  R          - Upgrade tower damage
  Space/P    - Pause
  1-4        - Game speed
  D          - Debug overlay
  N          - New siege
  Ctrl+S     - Screenshot
  Esc/B      - Leave
  Ctrl+C     - Quit

Examples:
  siege play
  siege play siege_hard
  siege play --difficulty easy
  siege play --config ./my-siege.yaml --telemetry ./waves.csv`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayTelemetry, "telemetry", "", "Write per-wave CSV telemetry to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := "siege"
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'siege list' to see available modes.")
		os.Exit(1)
	}

	cfg := terminalConfig()

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	waves, err := openTelemetry(flagPlayTelemetry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if waves != nil {
		siege.SetListener(waves)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg, logger)

	// Close resources before potential exit
	if store != nil {
		store.Close()
	}
	closeTelemetry(waves)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openTelemetry creates the wave log sized for the configured world.
// An empty path disables telemetry.
func openTelemetry(path string) (*telemetry.WaveWriter, error) {
	cfg := loadConfig()
	return telemetry.Create(path, cfg.World.Width, cfg.World.Height)
}

func closeTelemetry(waves *telemetry.WaveWriter) {
	if waves == nil {
		return
	}
	if err := waves.Err(); err != nil {
		logger.Warn("telemetry incomplete", "error", err)
	}
	if err := waves.Close(); err != nil {
		logger.Warn("could not close telemetry", "error", err)
	}
}
