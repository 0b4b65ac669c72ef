package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/emiliopalmerini/slipscope/internal/domain"
	"github.com/emiliopalmerini/slipscope/internal/ports"
)

// StatsVersion tags the cache document format produced by this engine.
const StatsVersion = 1

// Service runs the replay-corpus analysis pipeline: discovery, cache,
// viewpoint and outcome resolution, aggregation, report building. A single
// sequential worker processes files; cancellation is checked once per file
// through the context, so cancellation latency is bounded by one file's
// decode and aggregate step.
type Service struct {
	decoder ports.ReplayDecoder
	cache   ports.CacheStore
	sink    ports.Sink
	logger  ports.Logger
	glob    string
}

// NewService wires the analysis service. An empty glob falls back to
// DefaultGlob.
func NewService(decoder ports.ReplayDecoder, cache ports.CacheStore, sink ports.Sink, logger ports.Logger, glob string) *Service {
	if glob == "" {
		glob = DefaultGlob
	}
	return &Service{
		decoder: decoder,
		cache:   cache,
		sink:    sink,
		logger:  logger,
		glob:    glob,
	}
}

// Analyze processes every replay document under folder and returns the
// corpus report. Cancelling the context stops the loop before the next
// file and yields a valid partial report, not an error. Only corpus-level
// failures (unreadable folder, cache write failure) return an error.
func (s *Service) Analyze(ctx context.Context, folder string, criteria domain.Criteria) (*Report, error) {
	crit := criteria.Resolve()

	files, err := discoverReplays(folder, s.glob)
	if err != nil {
		return nil, err
	}
	s.logger.Debug(fmt.Sprintf("discovered %d replay documents in %s", len(files), folder))

	cache := s.cache.Open(folder)
	agg := NewAggregate()
	cancelled := false

	for i, path := range files {
		if ctx.Err() != nil {
			cancelled = true
			s.sink.Cancelled()
			break
		}
		s.processFile(path, crit, cache, agg)
		s.sink.Progress(i+1, len(files))
	}

	// The cache is persisted once, after the loop ends, cancelled or not.
	meta := ports.CacheMetadata{
		StatsVersion:   StatsVersion,
		DecoderVersion: s.decoder.Version(),
		SelfFilterEcho: crit.SelfTags,
	}
	if err := cache.Flush(meta); err != nil {
		return nil, fmt.Errorf("flush cache for %s: %w", folder, err)
	}

	return BuildReport(agg, criteria, folder, len(files), cancelled), nil
}

// processFile runs one file through the pipeline. Every per-file failure,
// including a decoder panic, degrades the file to the skipped counter and
// never aborts the run.
func (s *Service) processFile(path string, crit domain.ResolvedCriteria, cache ports.MatchCache, agg *Aggregate) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(fmt.Sprintf("panic processing %s: %v", path, r))
			agg.Skip()
		}
	}()

	raw, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error(fmt.Sprintf("read %s: %v", path, err))
		agg.Skip()
		return
	}
	sum := sha256.Sum256(raw)
	hash := hex.EncodeToString(sum[:])

	match, ok := cache.Get(hash)
	if ok {
		agg.cacheHits++
	} else {
		game, err := s.decoder.Decode(path)
		if err != nil {
			s.logger.Error(fmt.Sprintf("decode %s: %v", path, err))
			agg.Skip()
			return
		}
		match = domain.NewCachedMatch(game)
		cache.Put(hash, match)
		agg.newlyCached++
	}

	game := &match.Game
	if !game.TwoPlayers() {
		agg.Skip()
		return
	}

	p0 := domain.NewPlayerIdentity(game.Metadata.Players[0])
	p1 := domain.NewPlayerIdentity(game.Metadata.Players[1])
	vp, ok := domain.ResolveViewpoint(p0, p1, crit)
	if !ok {
		agg.Skip()
		return
	}

	fact, ok := domain.Classify(game, vp, crit)
	if !ok {
		agg.Skip()
		return
	}

	agg.Fold(fact)
	s.sink.Match(ports.MatchEvent{
		Self:     fact.SelfName,
		Opponent: fact.OpponentName,
		Stage:    fact.StageName,
		SelfWon:  fact.Won,
	})
}
