package domain

// FramesPerSecond is the fixed replay frame rate used to convert frame
// counts into seconds.
const FramesPerSecond = 60.0

// Game is the structured output of the external replay decoder for a
// single match. Binary decoding of the replay format happens outside this
// module; the engine only ever sees this shape.
type Game struct {
	Settings   GameSettings `json:"settings"`
	Metadata   GameMetadata `json:"metadata"`
	Stats      GameStats    `json:"stats"`
	LastFrame  LastFrame    `json:"lastFrame"`
	FrameCount int          `json:"frameCount"`
}

// GameSettings holds match-level settings recorded at game start.
type GameSettings struct {
	StageID int              `json:"stageId"`
	MatchID string           `json:"matchId"`
	Players []PlayerSettings `json:"players"`
}

// PlayerSettings holds the per-participant settings slot.
type PlayerSettings struct {
	PlayerIndex int `json:"playerIndex"`
	CharacterID int `json:"characterId"`
}

// GameMetadata holds per-participant identity metadata.
type GameMetadata struct {
	Players []PlayerMeta `json:"players"`
}

// PlayerMeta carries the names recorded for one participant.
type PlayerMeta struct {
	DisplayName string `json:"displayName"`
	ConnectCode string `json:"connectCode"`
	Nametag     string `json:"nametag,omitempty"`
}

// GameStats holds the decoder-computed per-player statistics.
type GameStats struct {
	Overall      []OverallStats `json:"overall"`
	ActionCounts []ActionCounts `json:"actionCounts"`
}

// OverallStats is the per-player overall summary.
type OverallStats struct {
	KillCount int `json:"killCount"`
}

// ActionCounts is the per-player mechanical action tally.
type ActionCounts struct {
	LCancelSuccess  int         `json:"lCancelSuccess"`
	LCancelFail     int         `json:"lCancelFail"`
	WavedashCount   int         `json:"wavedashCount"`
	RollCount       int         `json:"rollCount"`
	LedgegrabCount  int         `json:"ledgegrabCount"`
	DashDanceCount  int         `json:"dashDanceCount"`
	GroundTechCount int         `json:"groundTechCount"`
	GroundTechFail  int         `json:"groundTechFail"`
	ThrowCount      ThrowCounts `json:"throwCount"`
}

// ThrowCounts splits throws by direction.
type ThrowCounts struct {
	Up      int `json:"up"`
	Forward int `json:"forward"`
	Back    int `json:"back"`
	Down    int `json:"down"`
}

// LastFrame carries the per-player damage percent at the final frame.
type LastFrame struct {
	Percents []float64 `json:"percents"`
}

// DurationSeconds converts the recorded frame count to seconds.
func (g *Game) DurationSeconds() float64 {
	return float64(g.FrameCount) / FramesPerSecond
}

// TwoPlayers reports whether the game has exactly two participants across
// settings, metadata, stats and last-frame data. Anything else is outside
// the engine's scope and treated as unreadable.
func (g *Game) TwoPlayers() bool {
	return len(g.Settings.Players) == 2 &&
		len(g.Metadata.Players) == 2 &&
		len(g.Stats.Overall) == 2 &&
		len(g.Stats.ActionCounts) == 2 &&
		len(g.LastFrame.Percents) == 2
}
