// Package tui renders a live view of an in-flight analysis run: a
// progress bar plus a rolling ticker of qualifying matches.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/slipscope/internal/ports"
)

// ProgressMsg reports files processed so far.
type ProgressMsg struct {
	Processed int
	Total     int
}

// MatchMsg carries one qualifying match for the ticker.
type MatchMsg ports.MatchEvent

// CancelledMsg reports that the run stopped early.
type CancelledMsg struct{}

// DoneMsg reports that the analysis loop finished. The report itself is
// printed by the caller after the program exits.
type DoneMsg struct {
	Err error
}

// ProgramSink forwards engine events into a running bubbletea program.
type ProgramSink struct {
	program *tea.Program
}

// NewProgramSink wraps a program as a ports.Sink.
func NewProgramSink(program *tea.Program) *ProgramSink {
	return &ProgramSink{program: program}
}

func (s *ProgramSink) Progress(processed, total int) {
	s.program.Send(ProgressMsg{Processed: processed, Total: total})
}

func (s *ProgramSink) Match(ev ports.MatchEvent) {
	s.program.Send(MatchMsg(ev))
}

func (s *ProgramSink) Cancelled() {
	s.program.Send(CancelledMsg{})
}
