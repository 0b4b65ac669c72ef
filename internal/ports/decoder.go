package ports

import "github.com/emiliopalmerini/slipscope/internal/domain"

// ReplayDecoder turns one replay document into the decoder's structured
// output. Decoding the binary wire format is external to this module; an
// adapter wraps whatever tooling produced the document.
type ReplayDecoder interface {
	Decode(path string) (*domain.Game, error)
	// Version identifies the decoder build. It is recorded in the cache
	// document but never used to invalidate entries.
	Version() string
}
