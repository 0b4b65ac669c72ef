package domain

// CachedMatch is the persisted decode result for one replay document,
// keyed in the cache by the content hash of the file's raw bytes.
type CachedMatch struct {
	Game         Game    `json:"game"`
	TotalSeconds float64 `json:"totalSeconds"`
}

// NewCachedMatch wraps a decoded game with its derived duration.
func NewCachedMatch(game *Game) CachedMatch {
	return CachedMatch{
		Game:         *game,
		TotalSeconds: game.DurationSeconds(),
	}
}
