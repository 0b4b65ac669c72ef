package engine

import "github.com/emiliopalmerini/slipscope/internal/domain"

// cell is one games/wins/seconds bucket.
type cell struct {
	games   int
	wins    int
	seconds int
}

func (c *cell) add(fact domain.MatchFact) {
	c.games++
	if fact.Won {
		c.wins++
	}
	c.seconds += fact.GameSeconds
}

// matchupKey is (self character id, opponent character id).
type matchupKey struct {
	self     int
	opponent int
}

// opponentKey identifies an opponent across matches. There is no stable
// numeric id for identities, so the key is the name data itself.
type opponentKey struct {
	name string
	code string
}

// miscCounters accumulates the self-side mechanics across qualifying
// matches.
type miscCounters struct {
	lCancelSuccess  int
	lCancelFail     int
	wavedashes      int
	rolls           int
	ledgegrabs      int
	dashDances      int
	groundTechs     int
	groundTechFails int
	stocksTaken     int
	stocksLost      int
	throws          domain.ThrowCounts
}

// Aggregate folds qualifying per-match facts into the corpus-wide state.
// Tables are keyed by stable ids; display names resolve at report time.
// It is mutated only by the single sequential analysis worker.
type Aggregate struct {
	totalGames     int
	totalWins      int
	rawSeconds     float64
	countedSeconds int

	stages    map[int]*cell
	matchups  map[matchupKey]*cell
	playtime  map[int]int
	opponents map[opponentKey]*cell

	misc          miscCounters
	currentStreak int
	bestStreak    int

	skippedFiles int
	cacheHits    int
	newlyCached  int

	selfName string
	selfCode string
}

// NewAggregate returns an empty aggregate state.
func NewAggregate() *Aggregate {
	return &Aggregate{
		stages:    make(map[int]*cell),
		matchups:  make(map[matchupKey]*cell),
		playtime:  make(map[int]int),
		opponents: make(map[opponentKey]*cell),
	}
}

// Fold adds one qualifying match to every breakdown.
func (a *Aggregate) Fold(fact domain.MatchFact) {
	a.totalGames++
	if fact.Won {
		a.totalWins++
		a.currentStreak++
		if a.currentStreak > a.bestStreak {
			a.bestStreak = a.currentStreak
		}
	} else {
		a.currentStreak = 0
	}
	a.rawSeconds += fact.RawSeconds
	a.countedSeconds += fact.GameSeconds

	stage, ok := a.stages[fact.StageID]
	if !ok {
		stage = &cell{}
		a.stages[fact.StageID] = stage
	}
	stage.add(fact)

	// Matchups with an unresolvable character on either side are skipped
	// entirely; the match still counts toward every other breakdown.
	if fact.SelfCharacterName != domain.UnknownName && fact.OpponentCharacterName != domain.UnknownName {
		key := matchupKey{self: fact.SelfCharacterID, opponent: fact.OpponentCharacterID}
		matchup, ok := a.matchups[key]
		if !ok {
			matchup = &cell{}
			a.matchups[key] = matchup
		}
		matchup.add(fact)
	}

	a.playtime[fact.SelfCharacterID] += fact.GameSeconds

	oppKey := opponentKey{name: fact.OpponentName, code: fact.OpponentCode}
	opponent, ok := a.opponents[oppKey]
	if !ok {
		opponent = &cell{}
		a.opponents[oppKey] = opponent
	}
	opponent.add(fact)

	a.misc.lCancelSuccess += fact.Actions.LCancelSuccess
	a.misc.lCancelFail += fact.Actions.LCancelFail
	a.misc.wavedashes += fact.Actions.WavedashCount
	a.misc.rolls += fact.Actions.RollCount
	a.misc.ledgegrabs += fact.Actions.LedgegrabCount
	a.misc.dashDances += fact.Actions.DashDanceCount
	a.misc.groundTechs += fact.Actions.GroundTechCount
	a.misc.groundTechFails += fact.Actions.GroundTechFail
	a.misc.stocksTaken += fact.StocksTaken
	a.misc.stocksLost += fact.StocksLost
	a.misc.throws.Up += fact.Actions.ThrowCount.Up
	a.misc.throws.Forward += fact.Actions.ThrowCount.Forward
	a.misc.throws.Back += fact.Actions.ThrowCount.Back
	a.misc.throws.Down += fact.Actions.ThrowCount.Down

	a.selfName = fact.SelfName
	a.selfCode = fact.SelfCode
}

// Skip accounts for one file that contributed nothing to the totals.
func (a *Aggregate) Skip() {
	a.skippedFiles++
}
