// Package cachedoc persists decoded-match summaries as a single JSON
// document per analyzed folder, keyed by file content hash.
package cachedoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/emiliopalmerini/slipscope/internal/domain"
	"github.com/emiliopalmerini/slipscope/internal/ports"
)

// DefaultFileName is the cache document written beside the replay files.
const DefaultFileName = ".slipscope-cache.json"

type document struct {
	StatsVersion   int                           `json:"statsVersion"`
	DecoderVersion string                        `json:"decoderVersion"`
	SelfFilterEcho []string                      `json:"selfFilterEcho"`
	Results        map[string]domain.CachedMatch `json:"results"`
}

// Store opens per-folder cache documents.
type Store struct {
	fileName string
	logger   ports.Logger
}

// NewStore creates a cache store. An empty fileName falls back to
// DefaultFileName.
func NewStore(fileName string, logger ports.Logger) *Store {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Store{fileName: fileName, logger: logger}
}

// Open loads the folder's cache document. A missing or malformed document
// starts the cache empty instead of failing the run.
func (s *Store) Open(folder string) ports.MatchCache {
	cache := &folderCache{
		path:    filepath.Join(folder, s.fileName),
		results: make(map[string]domain.CachedMatch),
	}

	raw, err := os.ReadFile(cache.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error(fmt.Sprintf("read cache document %s: %v", cache.path, err))
		}
		return cache
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Error(fmt.Sprintf("malformed cache document %s: %v", cache.path, err))
		return cache
	}
	if doc.Results != nil {
		// Entries are trusted regardless of the recorded decoder version.
		cache.results = doc.Results
	}
	return cache
}

type folderCache struct {
	path    string
	results map[string]domain.CachedMatch
}

func (c *folderCache) Get(hash string) (domain.CachedMatch, bool) {
	match, ok := c.results[hash]
	return match, ok
}

func (c *folderCache) Put(hash string, match domain.CachedMatch) {
	c.results[hash] = match
}

// Flush overwrites the persisted document wholesale with the in-memory
// table.
func (c *folderCache) Flush(meta ports.CacheMetadata) error {
	doc := document{
		StatsVersion:   meta.StatsVersion,
		DecoderVersion: meta.DecoderVersion,
		SelfFilterEcho: meta.SelfFilterEcho,
		Results:        c.results,
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal cache document: %w", err)
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		return fmt.Errorf("write cache document: %w", err)
	}
	return nil
}
