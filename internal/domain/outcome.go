package domain

import "math"

// MinGameSeconds is the floor below which a match is considered too short
// to be real.
const MinGameSeconds = 30

// MatchFact is everything one qualifying match contributes to the corpus
// aggregates. A match either yields a complete fact or nothing at all.
type MatchFact struct {
	Won         bool
	GameSeconds int
	RawSeconds  float64

	SelfCharacterID       int
	SelfCharacterName     string
	OpponentCharacterID   int
	OpponentCharacterName string

	StageID   int
	StageName string

	SelfName     string
	SelfCode     string
	OpponentName string
	OpponentCode string

	// Self-side mechanics for the misc breakdown.
	Actions     ActionCounts
	StocksTaken int
	StocksLost  int
}

// Classify derives the per-match fact for a resolved viewpoint, or reports
// that the match is excluded. Exclusions: a character filter missing on
// either side, duration under MinGameSeconds, zero kills on both sides, a
// non-ranked match under the ranked-only flag, or a stage id missing from
// the known table.
func Classify(game *Game, vp Viewpoint, crit ResolvedCriteria) (MatchFact, bool) {
	selfChar := game.Settings.Players[vp.SelfIndex].CharacterID
	oppChar := game.Settings.Players[vp.OpponentIndex].CharacterID
	if !crit.SelfCharacter.Matches(selfChar) || !crit.OpponentCharacter.Matches(oppChar) {
		return MatchFact{}, false
	}

	raw := game.DurationSeconds()
	gameSeconds := int(math.Floor(raw))
	if gameSeconds < MinGameSeconds {
		return MatchFact{}, false
	}

	selfKills := game.Stats.Overall[vp.SelfIndex].KillCount
	oppKills := game.Stats.Overall[vp.OpponentIndex].KillCount
	if selfKills == 0 && oppKills == 0 {
		// Nobody took a stock: corrupted or aborted recording.
		return MatchFact{}, false
	}

	if crit.RankedOnly && ModeFromMatchID(game.Settings.MatchID) != ModeRanked {
		return MatchFact{}, false
	}

	stageName, ok := StageName(game.Settings.StageID)
	if !ok {
		return MatchFact{}, false
	}

	selfPercent := game.LastFrame.Percents[vp.SelfIndex]
	oppPercent := game.LastFrame.Percents[vp.OpponentIndex]
	won := selfKills > oppKills || (selfKills == oppKills && selfPercent < oppPercent)

	selfMeta := game.Metadata.Players[vp.SelfIndex]
	oppMeta := game.Metadata.Players[vp.OpponentIndex]

	return MatchFact{
		Won:                   won,
		GameSeconds:           gameSeconds,
		RawSeconds:            raw,
		SelfCharacterID:       selfChar,
		SelfCharacterName:     CharacterName(selfChar),
		OpponentCharacterID:   oppChar,
		OpponentCharacterName: CharacterName(oppChar),
		StageID:               game.Settings.StageID,
		StageName:             stageName,
		SelfName:              selfMeta.DisplayName,
		SelfCode:              selfMeta.ConnectCode,
		OpponentName:          oppMeta.DisplayName,
		OpponentCode:          oppMeta.ConnectCode,
		Actions:               game.Stats.ActionCounts[vp.SelfIndex],
		StocksTaken:           selfKills,
		StocksLost:            oppKills,
	}, true
}
