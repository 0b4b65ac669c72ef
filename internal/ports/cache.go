package ports

import "github.com/emiliopalmerini/slipscope/internal/domain"

// CacheMetadata is the header persisted alongside the result table. The
// decoder version is recorded but never checked against cached entries;
// entries from an older decoder are trusted as-is.
type CacheMetadata struct {
	StatsVersion   int
	DecoderVersion string
	SelfFilterEcho []string
}

// MatchCache persists decoded-match summaries keyed by the content hash of
// the replay document, so unchanged files are never re-decoded. Flush
// overwrites the whole persisted table with the in-memory one; entries for
// files gone from the corpus are dropped only because they were never
// re-hashed, never by explicit pruning.
type MatchCache interface {
	Get(hash string) (domain.CachedMatch, bool)
	Put(hash string, match domain.CachedMatch)
	Flush(meta CacheMetadata) error
}

// CacheStore opens the per-folder cache document. A missing or malformed
// document yields an empty cache rather than an error.
type CacheStore interface {
	Open(folder string) MatchCache
}
