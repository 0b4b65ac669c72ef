package theme

import "github.com/charmbracelet/lipgloss"

// Color palette for the live analysis view
var (
	// Primary colors
	Teal       = lipgloss.Color("#14B8A6")
	BrightTeal = lipgloss.Color("#2DD4BF")

	// Neutrals
	White     = lipgloss.Color("#FFFFFF")
	LightGray = lipgloss.Color("#9CA3AF")
	DimGray   = lipgloss.Color("#6B7280")

	// Semantic colors
	Win  = lipgloss.Color("#22C55E")
	Loss = lipgloss.Color("#EF4444")
	Warn = lipgloss.Color("#F59E0B")
)
