package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slime-siege/internal/config"
	"github.com/vovakirdan/slime-siege/internal/games/siege"
	"github.com/vovakirdan/slime-siege/internal/metrics"
	"github.com/vovakirdan/slime-siege/internal/sim"
	"github.com/vovakirdan/slime-siege/internal/storage"
)

var (
	flagSimSeconds   float64
	flagSimTicks     uint64
	flagSimAutopilot bool
	flagSimTelemetry string
	flagSimMetrics   string
	flagSimSave      bool
	flagSimRealtime  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run a siege without a terminal UI. The run ends when the time budget is
spent, the castle falls or the process is interrupted.

With --autopilot the player's gold is spent automatically: workers first,
then swordsmen, then tower upgrades.

Examples:
  siege sim --seconds 300 --seed 42
  siege sim --autopilot --seconds 0 --telemetry waves.csv --save
  siege sim --autopilot --seconds 0 --realtime --metrics :9100`,
	Run: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 300, "Simulated seconds to run (0 = until game over)")
	simCmd.Flags().Uint64Var(&flagSimTicks, "max-ticks", 0, "Stop after this many ticks (0 = no limit)")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Spend gold automatically")
	simCmd.Flags().StringVar(&flagSimTelemetry, "telemetry", "", "Write per-wave CSV telemetry to this file")
	simCmd.Flags().StringVar(&flagSimMetrics, "metrics", "", "Expose Prometheus metrics on this address while running")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the run history")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace the simulation at --fps")
}

func runSim(_ *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := loadConfig()
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	waves, err := openTelemetry(flagSimTelemetry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var listeners []siege.Listener
	if waves != nil {
		listeners = append(listeners, waves)
	}

	var collector *metrics.Collector
	if flagSimMetrics != "" {
		collector = metrics.NewCollector()
		listeners = append(listeners, collector)
		go func() {
			if err := collector.Serve(ctx, flagSimMetrics, logger); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	opts := sim.Options{
		Config:    cfg,
		Seed:      seed,
		TickRate:  flagFPS,
		Seconds:   flagSimSeconds,
		MaxTicks:  flagSimTicks,
		Autopilot: flagSimAutopilot,
		Listener:  siege.Listeners(listeners...),
		Logger:    logger,
		Strict:    flagStrict,
	}
	if collector != nil || flagSimRealtime {
		opts.Observer = observer(collector, flagSimRealtime)
	}

	logger.Info("simulation started", "seed", seed, "seconds", flagSimSeconds, "autopilot", flagSimAutopilot)
	res, err := sim.NewRunner(opts).Run(ctx)
	closeTelemetry(waves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printResult(res)

	if flagSimSave {
		saveSimRun(res)
	}
}

// observer feeds the metrics collector and, in realtime mode, sleeps so one
// simulated second takes one wall second.
func observer(collector *metrics.Collector, realtime bool) func(siege.HUD, time.Duration) {
	last := time.Now()
	return func(hud siege.HUD, tick time.Duration) {
		if collector != nil {
			collector.Observe(hud)
			if tick > 0 {
				collector.ObserveTick(tick)
			}
		}
		if realtime {
			if wait := time.Second - time.Since(last); wait > 0 {
				time.Sleep(wait)
			}
			last = time.Now()
		}
	}
}

func printResult(res sim.Result) {
	outcome := "survived"
	if res.GameOver {
		outcome = "castle fell"
	}
	fmt.Printf("Seed:        %d\n", res.Seed)
	fmt.Printf("Outcome:     %s\n", outcome)
	fmt.Printf("Wave:        %d\n", res.Wave)
	fmt.Printf("Kills:       %d\n", res.Kills)
	fmt.Printf("Gold:        %d\n", res.Money)
	fmt.Printf("Ticks:       %d (%.1fs simulated, %s wall)\n", res.Ticks, res.SimSeconds, res.Wall.Round(time.Millisecond))
	if flagSimAutopilot {
		fmt.Printf("Autopilot:   %d purchases, %d upgrades\n", res.Purchases, res.Upgrades)
	}
	fmt.Printf("State hash:  %016x\n", res.Hash)
}

func saveSimRun(res sim.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return
	}
	defer store.Close()

	mode := "siege"
	if preset, _ := config.ParsePreset(flagDifficulty); preset != config.DifficultyNormal {
		mode = "siege_" + string(preset)
	}
	run, err := store.SaveRun(storage.Run{
		Mode:       mode,
		Player:     "sim",
		Seed:       res.Seed,
		Waves:      res.Wave,
		Kills:      res.Kills,
		Money:      res.Money,
		SimSeconds: res.SimSeconds,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", err)
		return
	}
	fmt.Printf("Saved run:   %s\n", run.RunID)
}
