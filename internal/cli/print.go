package cli

import (
	"fmt"

	"github.com/emiliopalmerini/slipscope/internal/engine"
	"github.com/emiliopalmerini/slipscope/internal/util"
)

// maxRows caps each breakdown table in the text report; the JSON output
// always carries everything.
const maxRows = 10

func printReport(report *engine.Report) {
	fmt.Println()
	fmt.Printf("  slipscope Report\n")
	fmt.Printf("  ================\n")
	fmt.Println()

	fmt.Printf("  Folder:            %s\n", report.Folder)
	if report.SelfName != "" || report.SelfCode != "" {
		fmt.Printf("  Player:            %s (%s)\n", report.SelfName, report.SelfCode)
	}
	if report.Cancelled {
		fmt.Printf("  Cancelled:         yes (partial results)\n")
	}
	fmt.Println()

	fmt.Printf("  Files\n")
	fmt.Printf("  -----\n")
	fmt.Printf("  Scanned:           %d\n", report.TotalFiles)
	fmt.Printf("  Skipped:           %d\n", report.SkippedFiles)
	fmt.Printf("  Cache hits:        %d\n", report.CacheHits)
	fmt.Printf("  Newly decoded:     %d\n", report.NewlyCached)
	fmt.Println()

	if !report.Found {
		fmt.Printf("  No games matched the current filters.\n")
		fmt.Println()
		return
	}

	fmt.Printf("  Overview\n")
	fmt.Printf("  --------\n")
	fmt.Printf("  Games:             %d\n", report.TotalGames)
	fmt.Printf("  Wins:              %d\n", report.TotalWins)
	fmt.Printf("  Win rate:          %s%%\n", report.WinRate)
	fmt.Printf("  Time played:       %s\n", util.FormatSeconds(report.CountedSeconds))
	fmt.Printf("  Best win streak:   %d\n", report.Misc.BestWinStreak)
	fmt.Println()

	if len(report.Stages) > 0 {
		fmt.Printf("  Stages\n")
		fmt.Printf("  ------\n")
		for i, row := range report.Stages {
			if i == maxRows {
				break
			}
			fmt.Printf("  %-24s %4d games  %4d wins  %7s%%\n", row.Name, row.Games, row.Wins, row.WinRate)
		}
		fmt.Println()
	}

	if len(report.Matchups) > 0 {
		fmt.Printf("  Matchups\n")
		fmt.Printf("  --------\n")
		for i, row := range report.Matchups {
			if i == maxRows {
				break
			}
			pair := row.SelfCharacter + " vs " + row.OpponentCharacter
			fmt.Printf("  %-28s %4d games  %4d wins  %7s%%\n", pair, row.Games, row.Wins, row.WinRate)
		}
		fmt.Println()
	}

	if len(report.Opponents) > 0 {
		fmt.Printf("  Opponents\n")
		fmt.Printf("  ---------\n")
		for i, row := range report.Opponents {
			if i == maxRows {
				break
			}
			name := row.Name
			if row.Code != "" {
				name = fmt.Sprintf("%s (%s)", row.Name, row.Code)
			}
			fmt.Printf("  %-28s %4d games  %4d wins  %7s%%\n", name, row.Games, row.Wins, row.WinRate)
		}
		fmt.Println()
	}

	if len(report.Playtime) > 0 {
		fmt.Printf("  Playtime\n")
		fmt.Printf("  --------\n")
		for _, row := range report.Playtime {
			fmt.Printf("  %-24s %s\n", row.Character, util.FormatSeconds(row.Seconds))
		}
		fmt.Println()
	}

	misc := report.Misc
	fmt.Printf("  Mechanics\n")
	fmt.Printf("  ---------\n")
	fmt.Printf("  L-cancels:         %d/%d (%s%%)\n", misc.LCancelSuccess, misc.LCancelSuccess+misc.LCancelFail, misc.LCancelRate)
	fmt.Printf("  Wavedashes:        %d\n", misc.Wavedashes)
	fmt.Printf("  Rolls:             %d\n", misc.Rolls)
	fmt.Printf("  Ledge grabs:       %d\n", misc.Ledgegrabs)
	fmt.Printf("  Dash dances:       %d\n", misc.DashDances)
	fmt.Printf("  Ground techs:      %d (%d missed)\n", misc.GroundTechs, misc.GroundTechFails)
	fmt.Printf("  Stocks taken:      %d\n", misc.StocksTaken)
	fmt.Printf("  Stocks lost:       %d\n", misc.StocksLost)
	fmt.Printf("  Throws:            %d up / %d fwd / %d back / %d down\n",
		misc.Throws.Up, misc.Throws.Forward, misc.Throws.Back, misc.Throws.Down)
	fmt.Println()
}
