package engine

import (
	"testing"

	"github.com/emiliopalmerini/slipscope/internal/domain"
)

func TestBuildReportSortsBreakdowns(t *testing.T) {
	agg := NewAggregate()
	agg.Fold(fact(true, 32, 2, 20, 100, "Mango"))
	agg.Fold(fact(false, 32, 2, 20, 110, "Mango"))
	agg.Fold(fact(true, 31, 2, 9, 90, "Zain"))

	report := BuildReport(agg, domain.Criteria{SelfTags: []string{"ryan"}}, "/replays", 5, false)

	if !report.Found {
		t.Fatal("expected found to be true with qualifying games")
	}
	if report.TotalGames != 3 || report.TotalWins != 2 {
		t.Errorf("totals = %d/%d, expected 3/2", report.TotalGames, report.TotalWins)
	}
	if report.WinRate != "66.67" {
		t.Errorf("win rate = %q, expected 66.67", report.WinRate)
	}
	if report.TotalFiles != 5 {
		t.Errorf("total files = %d, expected 5", report.TotalFiles)
	}

	if len(report.Stages) != 2 {
		t.Fatalf("stage rows = %d, expected 2", len(report.Stages))
	}
	if report.Stages[0].Name != "Final Destination" || report.Stages[0].Games != 2 {
		t.Errorf("first stage row = %+v, expected Final Destination with 2 games", report.Stages[0])
	}
	if report.Stages[1].Name != "Battlefield" {
		t.Errorf("second stage row = %+v, expected Battlefield", report.Stages[1])
	}

	if len(report.Matchups) != 2 {
		t.Fatalf("matchup rows = %d, expected 2", len(report.Matchups))
	}
	if report.Matchups[0].OpponentCharacter != "Falco" || report.Matchups[0].Games != 2 {
		t.Errorf("first matchup row = %+v, expected Fox versus Falco with 2 games", report.Matchups[0])
	}

	if len(report.Opponents) != 2 {
		t.Fatalf("opponent rows = %d, expected 2", len(report.Opponents))
	}
	if report.Opponents[0].Name != "Mango" {
		t.Errorf("first opponent row = %+v, expected Mango", report.Opponents[0])
	}

	if len(report.Playtime) != 1 {
		t.Fatalf("playtime rows = %d, expected 1", len(report.Playtime))
	}
	if report.Playtime[0].Character != "Fox" || report.Playtime[0].Seconds != 300 {
		t.Errorf("playtime row = %+v, expected Fox 300", report.Playtime[0])
	}

	if report.Misc.BestWinStreak != 1 {
		t.Errorf("best streak = %d, expected 1", report.Misc.BestWinStreak)
	}
}

func TestBuildReportTieBreaksByName(t *testing.T) {
	agg := NewAggregate()
	agg.Fold(fact(true, 2, 2, 20, 60, "Bob"))
	agg.Fold(fact(true, 3, 2, 9, 60, "Alice"))

	report := BuildReport(agg, domain.Criteria{}, "/replays", 2, false)

	if report.Stages[0].Name != "Fountain of Dreams" {
		t.Errorf("first stage = %q, equal game counts must sort by name", report.Stages[0].Name)
	}
	if report.Opponents[0].Name != "Alice" {
		t.Errorf("first opponent = %q, equal game counts must sort by name", report.Opponents[0].Name)
	}
	if report.Matchups[0].OpponentCharacter != "Falco" {
		t.Errorf("first matchup opponent = %q, expected Falco before Marth", report.Matchups[0].OpponentCharacter)
	}
}

func TestBuildReportNoQualifyingGames(t *testing.T) {
	agg := NewAggregate()
	agg.Skip()

	criteria := domain.Criteria{SelfTags: []string{"nobody"}}
	report := BuildReport(agg, criteria, "/replays", 3, false)

	if report.Found {
		t.Error("expected found to be false with no qualifying games")
	}
	if report.WinRate != "0.00" {
		t.Errorf("win rate = %q, expected 0.00", report.WinRate)
	}
	if report.SkippedFiles != 1 || report.TotalFiles != 3 {
		t.Errorf("file counters = %d skipped of %d, expected 1 of 3", report.SkippedFiles, report.TotalFiles)
	}
	if len(report.Stages) != 0 || len(report.Matchups) != 0 || len(report.Opponents) != 0 || len(report.Playtime) != 0 {
		t.Error("breakdowns must stay empty with no qualifying games")
	}
	if len(report.Criteria.SelfTags) != 1 || report.Criteria.SelfTags[0] != "nobody" {
		t.Errorf("criteria echo = %+v", report.Criteria)
	}
}

func TestBuildReportCancelledFlag(t *testing.T) {
	report := BuildReport(NewAggregate(), domain.Criteria{}, "/replays", 10, true)
	if !report.Cancelled {
		t.Error("expected the cancelled flag to be carried into the report")
	}
}
