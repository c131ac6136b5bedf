// siege is a terminal tower-defense: slimes pour in from the edges of a
// growing world and the castle, its workers and swordsmen hold them off.
//
// Usage:
//
//	siege list              - List available modes
//	siege play [mode]       - Play a mode (default: siege)
//	siege menu              - Pick a mode interactively
//	siege sim               - Run a headless simulation
//	siege serve             - Start SSH server for remote play
//	siege scores [mode]     - Show the best runs for a mode
//	siege report <file>     - Summarize a wave telemetry CSV
//	siege config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.siege/runs.db)
//	--config <path>       - Load a custom siege.yaml
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--strict              - Panic on simulation invariant violations
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/games/siege"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagStrict     bool

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "siege",
	Short: "Slime Siege - defend the castle in your terminal",
	Long: `Slime Siege is a terminal tower-defense game. Waves of slimes spawn at
the edges of the world and march on your castle. Spend gold on workers,
swordsmen and tower upgrades to survive as many waves as you can.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  sim      - Run a headless simulation
  serve    - Start SSH server for remote play
  scores   - View the best runs
  report   - Summarize a wave telemetry CSV
  config   - Print the effective configuration

Examples:
  siege play
  siege play siege_hard
  siege sim --seconds 600 --autopilot --telemetry waves.csv
  siege serve --ssh :2222 --metrics :9100
  siege scores siege`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.siege/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom siege config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Panic on simulation invariant violations")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and hands the global flags to the siege package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "siege",
		Level:           level,
	})

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	siege.SetConfigPath(flagConfig)
	siege.SetDifficultyPreset(preset)
	siege.SetLogger(logger)
	siege.SetStrict(flagStrict)
	return nil
}

// loadConfig returns the effective configuration for the CLI flags.
func loadConfig() config.SiegeConfig {
	preset, _ := config.ParsePreset(flagDifficulty)
	return siege.LoadConfig(preset)
}
