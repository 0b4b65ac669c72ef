package engine

import (
	"testing"

	"github.com/emiliopalmerini/slipscope/internal/domain"
)

func fact(won bool, stage int, self, opponent int, seconds int, oppName string) domain.MatchFact {
	return domain.MatchFact{
		Won:                   won,
		GameSeconds:           seconds,
		RawSeconds:            float64(seconds),
		SelfCharacterID:       self,
		SelfCharacterName:     domain.CharacterName(self),
		OpponentCharacterID:   opponent,
		OpponentCharacterName: domain.CharacterName(opponent),
		StageID:               stage,
		SelfName:              "Ryan",
		SelfCode:              "RYAN#123",
		OpponentName:          oppName,
		OpponentCode:          oppName + "#1",
	}
}

func TestAggregateFoldTotalsAndStreaks(t *testing.T) {
	agg := NewAggregate()

	// W W L W: best streak is 2, current resets on the loss.
	agg.Fold(fact(true, 31, 2, 20, 100, "Mango"))
	agg.Fold(fact(true, 31, 2, 20, 120, "Mango"))
	agg.Fold(fact(false, 32, 2, 9, 90, "Zain"))
	agg.Fold(fact(true, 32, 2, 9, 80, "Zain"))

	if agg.totalGames != 4 || agg.totalWins != 3 {
		t.Errorf("totals = %d games %d wins, expected 4 and 3", agg.totalGames, agg.totalWins)
	}
	if agg.bestStreak != 2 {
		t.Errorf("best streak = %d, expected 2", agg.bestStreak)
	}
	if agg.currentStreak != 1 {
		t.Errorf("current streak = %d, expected 1", agg.currentStreak)
	}
	if agg.countedSeconds != 390 {
		t.Errorf("counted seconds = %d, expected 390", agg.countedSeconds)
	}

	if got := agg.stages[31].games; got != 2 {
		t.Errorf("battlefield games = %d, expected 2", got)
	}
	if got := agg.matchups[matchupKey{self: 2, opponent: 9}].wins; got != 1 {
		t.Errorf("fox versus marth wins = %d, expected 1", got)
	}
	if got := agg.playtime[2]; got != 390 {
		t.Errorf("fox playtime = %d, expected 390", got)
	}
	if got := agg.opponents[opponentKey{name: "Zain", code: "Zain#1"}].games; got != 2 {
		t.Errorf("zain games = %d, expected 2", got)
	}
	if agg.selfName != "Ryan" || agg.selfCode != "RYAN#123" {
		t.Errorf("self echo = %q %q", agg.selfName, agg.selfCode)
	}
}

func TestAggregateSkipsUnknownCharacterMatchups(t *testing.T) {
	agg := NewAggregate()

	f := fact(true, 31, 2, 99, 100, "Mango")
	f.OpponentCharacterName = domain.UnknownName
	agg.Fold(f)

	if len(agg.matchups) != 0 {
		t.Errorf("matchup table has %d entries, expected none", len(agg.matchups))
	}
	if agg.totalGames != 1 {
		t.Errorf("total games = %d, the match must still count", agg.totalGames)
	}
	if agg.stages[31].games != 1 {
		t.Error("the match must still count toward its stage")
	}
}

func TestAggregateSkipCountsFilesOnly(t *testing.T) {
	agg := NewAggregate()
	agg.Skip()
	agg.Skip()

	if agg.skippedFiles != 2 {
		t.Errorf("skipped files = %d, expected 2", agg.skippedFiles)
	}
	if agg.totalGames != 0 || agg.countedSeconds != 0 {
		t.Error("skipped files must not contribute to game or time totals")
	}
}
