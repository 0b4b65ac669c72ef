package ports

// MatchEvent is the per-qualifying-match ticker payload for UI consumers.
type MatchEvent struct {
	Self     string
	Opponent string
	Stage    string
	SelfWon  bool
}

// Sink receives progress notifications from the analysis loop. The engine
// calls it after every file, once per qualifying match, and once if the
// run is cancelled; it knows nothing about how events are transported.
type Sink interface {
	Progress(processed, total int)
	Match(ev MatchEvent)
	Cancelled()
}

// NoopSink discards all events.
type NoopSink struct{}

func (NoopSink) Progress(int, int) {}
func (NoopSink) Match(MatchEvent)  {}
func (NoopSink) Cancelled()        {}
