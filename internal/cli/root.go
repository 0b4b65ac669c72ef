package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slipscope",
	Short: "Win-rate and matchup analytics for Slippi replay corpora",
	Long: `slipscope analyzes a folder of replay documents from the perspective of a
chosen player identity.

Point it at a folder of decoded replays, tell it which tags are yours, and it
computes win rates, stage and matchup breakdowns, opponent records, and
mechanical stats (L-cancels, wavedashes, techs, throws, win streaks). Decode
results are cached next to the replays so re-runs are cheap.`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
