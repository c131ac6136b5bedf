package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slime-siege/internal/telemetry"
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Summarize a wave telemetry CSV",
	Long: `Read a CSV written by 'siege play --telemetry' or 'siege sim --telemetry'
and print one line per wave plus totals.

Examples:
  siege report waves.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runReport,
}

func runReport(_ *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	records, err := telemetry.ReadWaves(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No waves recorded.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-9s  %-7s  %-5s  %-6s  %s\n",
		"Wave", "Start", "Length", "Strength", "Result", "Kills", "Gold", "World")
	fmt.Printf("  %-4s  %-8s  %-8s  %-9s  %-7s  %-5s  %-6s  %s\n",
		"----", "-----", "------", "--------", "------", "-----", "----", "-----")

	cleared, kills := 0, 0
	for _, r := range records {
		result := "timeout"
		if r.Cleared {
			cleared++
			result = "cleared"
		}
		kills += r.WaveKills
		fmt.Printf("  %-4d  %-8.1f  %-8.1f  %-9s  %-7s  %-5d  %-6d  %.0fx%.0f\n",
			r.Wave, r.Time-r.Duration, r.Duration,
			fmt.Sprintf("%.0f/%.0f", r.Strength-r.Remaining, r.Strength),
			result, r.WaveKills, r.Money, r.Width, r.Height)
	}

	last := records[len(records)-1]
	fmt.Println()
	fmt.Printf("Waves: %d  Cleared: %d  Kills in waves: %d  Total kills: %d  Final gold: %d\n",
		len(records), cleared, kills, last.Kills, last.Money)
}
