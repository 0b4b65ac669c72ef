package util

import "fmt"

// Rate renders wins/games as a percentage with two decimal places.
// Examples: 3 wins / 4 games -> "75.00", 0 games -> "0.00"
func Rate(wins, games int) string {
	if games == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(wins)/float64(games)*100)
}

// FormatSeconds renders a whole-second count as h/m/s for readability.
// Examples: 42 -> "42s", 90 -> "1m30s", 3700 -> "1h1m40s"
func FormatSeconds(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm%ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh%dm%ds", seconds/3600, (seconds%3600)/60, seconds%60)
}
