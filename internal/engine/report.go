package engine

import (
	"sort"

	"github.com/emiliopalmerini/slipscope/internal/domain"
	"github.com/emiliopalmerini/slipscope/internal/util"
)

// StageRow is one stage's breakdown in the final report.
type StageRow struct {
	StageID int    `json:"stageId"`
	Name    string `json:"name"`
	Games   int    `json:"games"`
	Wins    int    `json:"wins"`
	Seconds int    `json:"seconds"`
	WinRate string `json:"winRate"`
}

// MatchupRow is one self-character versus opponent-character breakdown.
type MatchupRow struct {
	SelfCharacter     string `json:"selfCharacter"`
	OpponentCharacter string `json:"opponentCharacter"`
	Games             int    `json:"games"`
	Wins              int    `json:"wins"`
	Seconds           int    `json:"seconds"`
	WinRate           string `json:"winRate"`
}

// OpponentRow is one opponent identity's breakdown.
type OpponentRow struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Games   int    `json:"games"`
	Wins    int    `json:"wins"`
	WinRate string `json:"winRate"`
}

// PlaytimeRow is the time spent on one self character.
type PlaytimeRow struct {
	Character string `json:"character"`
	Seconds   int    `json:"seconds"`
}

// MiscStats is the corpus-wide mechanics breakdown.
type MiscStats struct {
	LCancelSuccess  int                `json:"lCancelSuccess"`
	LCancelFail     int                `json:"lCancelFail"`
	LCancelRate     string             `json:"lCancelRate"`
	Wavedashes      int                `json:"wavedashes"`
	Rolls           int                `json:"rolls"`
	Ledgegrabs      int                `json:"ledgegrabs"`
	DashDances      int                `json:"dashDances"`
	GroundTechs     int                `json:"groundTechs"`
	GroundTechFails int                `json:"groundTechFails"`
	StocksTaken     int                `json:"stocksTaken"`
	StocksLost      int                `json:"stocksLost"`
	Throws          domain.ThrowCounts `json:"throws"`
	BestWinStreak   int                `json:"bestWinStreak"`
}

// Report is the immutable result of one analysis run. Built once after the
// loop ends and never mutated afterwards.
type Report struct {
	Folder string `json:"folder"`

	Criteria domain.Criteria `json:"criteria"`
	SelfName string          `json:"selfName"`
	SelfCode string          `json:"selfCode"`

	Found      bool   `json:"found"`
	TotalGames int    `json:"totalGames"`
	TotalWins  int    `json:"totalWins"`
	WinRate    string `json:"winRate"`

	RawSeconds     float64 `json:"rawSeconds"`
	CountedSeconds int     `json:"countedSeconds"`

	TotalFiles   int  `json:"totalFiles"`
	SkippedFiles int  `json:"skippedFiles"`
	CacheHits    int  `json:"cacheHits"`
	NewlyCached  int  `json:"newlyCached"`
	Cancelled    bool `json:"cancelled"`

	Stages    []StageRow    `json:"stages"`
	Matchups  []MatchupRow  `json:"matchups"`
	Opponents []OpponentRow `json:"opponents"`
	Playtime  []PlaytimeRow `json:"playtime"`
	Misc      MiscStats     `json:"misc"`
}

// BuildReport shapes the final report from the aggregate state. With zero
// qualifying games the report keeps the echoed criteria and the file and
// time counters but carries empty breakdowns.
func BuildReport(agg *Aggregate, criteria domain.Criteria, folder string, totalFiles int, cancelled bool) *Report {
	report := &Report{
		Folder:         folder,
		Criteria:       criteria,
		SelfName:       agg.selfName,
		SelfCode:       agg.selfCode,
		Found:          agg.totalGames > 0,
		TotalGames:     agg.totalGames,
		TotalWins:      agg.totalWins,
		WinRate:        util.Rate(agg.totalWins, agg.totalGames),
		RawSeconds:     agg.rawSeconds,
		CountedSeconds: agg.countedSeconds,
		TotalFiles:     totalFiles,
		SkippedFiles:   agg.skippedFiles,
		CacheHits:      agg.cacheHits,
		NewlyCached:    agg.newlyCached,
		Cancelled:      cancelled,
	}
	if !report.Found {
		return report
	}

	for id, c := range agg.stages {
		name, _ := domain.StageName(id)
		report.Stages = append(report.Stages, StageRow{
			StageID: id,
			Name:    name,
			Games:   c.games,
			Wins:    c.wins,
			Seconds: c.seconds,
			WinRate: util.Rate(c.wins, c.games),
		})
	}
	sort.Slice(report.Stages, func(i, j int) bool {
		if report.Stages[i].Games != report.Stages[j].Games {
			return report.Stages[i].Games > report.Stages[j].Games
		}
		return report.Stages[i].Name < report.Stages[j].Name
	})

	for key, c := range agg.matchups {
		report.Matchups = append(report.Matchups, MatchupRow{
			SelfCharacter:     domain.CharacterName(key.self),
			OpponentCharacter: domain.CharacterName(key.opponent),
			Games:             c.games,
			Wins:              c.wins,
			Seconds:           c.seconds,
			WinRate:           util.Rate(c.wins, c.games),
		})
	}
	sort.Slice(report.Matchups, func(i, j int) bool {
		a, b := report.Matchups[i], report.Matchups[j]
		if a.Games != b.Games {
			return a.Games > b.Games
		}
		if a.SelfCharacter != b.SelfCharacter {
			return a.SelfCharacter < b.SelfCharacter
		}
		return a.OpponentCharacter < b.OpponentCharacter
	})

	for key, c := range agg.opponents {
		report.Opponents = append(report.Opponents, OpponentRow{
			Name:    key.name,
			Code:    key.code,
			Games:   c.games,
			Wins:    c.wins,
			WinRate: util.Rate(c.wins, c.games),
		})
	}
	sort.Slice(report.Opponents, func(i, j int) bool {
		a, b := report.Opponents[i], report.Opponents[j]
		if a.Games != b.Games {
			return a.Games > b.Games
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Code < b.Code
	})

	for id, seconds := range agg.playtime {
		report.Playtime = append(report.Playtime, PlaytimeRow{
			Character: domain.CharacterName(id),
			Seconds:   seconds,
		})
	}
	sort.Slice(report.Playtime, func(i, j int) bool {
		if report.Playtime[i].Seconds != report.Playtime[j].Seconds {
			return report.Playtime[i].Seconds > report.Playtime[j].Seconds
		}
		return report.Playtime[i].Character < report.Playtime[j].Character
	})

	report.Misc = MiscStats{
		LCancelSuccess:  agg.misc.lCancelSuccess,
		LCancelFail:     agg.misc.lCancelFail,
		LCancelRate:     util.Rate(agg.misc.lCancelSuccess, agg.misc.lCancelSuccess+agg.misc.lCancelFail),
		Wavedashes:      agg.misc.wavedashes,
		Rolls:           agg.misc.rolls,
		Ledgegrabs:      agg.misc.ledgegrabs,
		DashDances:      agg.misc.dashDances,
		GroundTechs:     agg.misc.groundTechs,
		GroundTechFails: agg.misc.groundTechFails,
		StocksTaken:     agg.misc.stocksTaken,
		StocksLost:      agg.misc.stocksLost,
		Throws:          agg.misc.throws,
		BestWinStreak:   agg.bestStreak,
	}

	return report
}
