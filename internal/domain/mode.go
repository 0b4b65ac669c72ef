package domain

import "strings"

// MatchMode is the online queue a match was played in, derived from the
// match identifier prefix.
type MatchMode string

const (
	ModeRanked   MatchMode = "ranked"
	ModeUnranked MatchMode = "unranked"
	ModeDirect   MatchMode = "direct"
	ModeUnknown  MatchMode = "unknown"
)

// ModeFromMatchID checks the match identifier for a known mode prefix.
// Identifiers look like "mode.ranked-2024-01-18T06:52:39.20-0".
func ModeFromMatchID(matchID string) MatchMode {
	switch {
	case strings.HasPrefix(matchID, "mode.ranked"):
		return ModeRanked
	case strings.HasPrefix(matchID, "mode.unranked"):
		return ModeUnranked
	case strings.HasPrefix(matchID, "mode.direct"):
		return ModeDirect
	default:
		return ModeUnknown
	}
}
