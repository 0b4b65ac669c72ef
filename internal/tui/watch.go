package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/slipscope/internal/pkg/tui/theme"
	"github.com/emiliopalmerini/slipscope/internal/ports"
)

const (
	barWidth   = 30
	tickerSize = 8
)

// Watch is the live analysis model. It owns the run's cancel function so
// q / ctrl+c stop the engine cooperatively; the engine then emits the
// cancelled event and finishes with a partial report.
type Watch struct {
	folder    string
	cancel    context.CancelFunc
	styles    *theme.Styles
	processed int
	total     int
	ticker    []ports.MatchEvent
	cancelled bool
	done      bool
	err       error
}

// NewWatch creates the live view for one run.
func NewWatch(folder string, cancel context.CancelFunc) *Watch {
	return &Watch{
		folder: folder,
		cancel: cancel,
		styles: theme.Default(),
	}
}

// Err returns the analysis error delivered with DoneMsg, if any.
func (w *Watch) Err() error {
	return w.err
}

// Init implements tea.Model
func (w *Watch) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (w *Watch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			w.cancel()
		}

	case ProgressMsg:
		w.processed = msg.Processed
		w.total = msg.Total

	case MatchMsg:
		w.ticker = append(w.ticker, ports.MatchEvent(msg))
		if len(w.ticker) > tickerSize {
			w.ticker = w.ticker[len(w.ticker)-tickerSize:]
		}

	case CancelledMsg:
		w.cancelled = true

	case DoneMsg:
		w.done = true
		w.err = msg.Err
		return w, tea.Quit
	}

	return w, nil
}

// View implements tea.Model
func (w *Watch) View() string {
	var b strings.Builder

	b.WriteString(w.styles.Title.Render("slipscope"))
	b.WriteString("\n")
	b.WriteString(w.styles.Muted.Render(w.folder))
	b.WriteString("\n\n")

	b.WriteString(w.renderBar())
	b.WriteString(w.styles.Body.Render(fmt.Sprintf("  %d/%d files", w.processed, w.total)))
	if w.cancelled {
		b.WriteString("  ")
		b.WriteString(w.styles.Cancelled.Render("cancelled"))
	}
	b.WriteString("\n\n")

	for _, ev := range w.ticker {
		outcome := w.styles.Loss.Render("L")
		if ev.SelfWon {
			outcome = w.styles.Win.Render("W")
		}
		line := fmt.Sprintf("%s  %s vs %s on %s",
			outcome,
			ev.Self,
			ev.Opponent,
			ev.Stage,
		)
		b.WriteString(w.styles.Body.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(w.styles.Help.Render(w.styles.HelpKey.Render("q") + " cancel"))
	b.WriteString("\n")

	return b.String()
}

func (w *Watch) renderBar() string {
	filled := 0
	if w.total > 0 {
		filled = w.processed * barWidth / w.total
	}
	var b strings.Builder
	for i := 0; i < barWidth; i++ {
		if i < filled {
			b.WriteString(w.styles.ProgressActive.Render("█"))
		} else {
			b.WriteString(w.styles.ProgressInactive.Render("░"))
		}
	}
	return b.String()
}
