package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/slipscope/internal/adapters/history"
	"github.com/emiliopalmerini/slipscope/internal/infrastructure/config"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent analysis runs",
	Long: `List the most recent analysis runs recorded in the local history
database, newest first.`,
	RunE: runRuns,
}

var runsLimit int

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadAnalyzer()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	ctx := context.Background()
	db, err := history.NewDB(ctx, cfg.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer db.Close()

	runs, err := history.NewRepository(db).ListRecent(ctx, runsLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-20s %-6s %-6s %-8s %-9s %s\n", "Finished", "Games", "Wins", "Rate", "Skipped", "Folder")
	for _, run := range runs {
		finished := run.FinishedAt.Local().Format("2006-01-02 15:04")
		rate := run.WinRate + "%"
		if run.Cancelled {
			rate += " *"
		}
		fmt.Printf("  %-20s %-6d %-6d %-8s %-9d %s\n",
			finished, run.TotalGames, run.TotalWins, rate, run.SkippedFiles, run.Folder)
	}
	fmt.Println()
	fmt.Println("  * cancelled run (partial results)")
	fmt.Println()
	return nil
}
