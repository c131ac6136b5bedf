package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slime-siege/internal/registry"
	"github.com/vovakirdan/slime-siege/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs for the specified mode (default: siege),
ranked by waves reached and then by kills.

Examples:
  siege scores
  siege scores siege_hard --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := "siege"
	if len(args) == 1 {
		modeID = args[0]
	}

	info, ok := registry.Lookup(modeID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'siege list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.TopRuns(modeID, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Best Sieges - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No sieges recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'siege play %s' to set the first record!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-10s  %-16s  %s\n", "Rank", "Wave", "Kills", "Gold", "Player", "Date", "Run")
	fmt.Printf("  %-4s  %-5s  %-6s  %-6s  %-10s  %-16s  %s\n", "----", "----", "-----", "----", "------", "----", "---")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-5d  %-6d  %-6d  %-10s  %-16s  %s\n",
			i+1, r.Waves, r.Kills, r.Money, player, r.CreatedAt.Format("2006-01-02 15:04"), shortID(r.RunID))
	}

	if stats, err := store.GetModeStats(modeID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: wave %d  Average: %.1f  Total kills: %d\n",
			stats.Runs, stats.BestWave, stats.AvgWave, stats.TotalKills)
	}
}

// shortID trims a uuid to its first group for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
