// Package slpjson decodes the structured JSON documents emitted by the
// external slippi-js stats tooling. Binary .slp decoding stays outside
// this module; these documents are its pre-computed output.
package slpjson

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/emiliopalmerini/slipscope/internal/domain"
)

// FormatVersion identifies the document format this decoder consumes.
const FormatVersion = "slp-json/1"

// Decoder reads one replay document into the decoder output model.
type Decoder struct{}

// New creates a decoder.
func New() *Decoder {
	return &Decoder{}
}

// Version implements ports.ReplayDecoder.
func (*Decoder) Version() string {
	return FormatVersion
}

// Decode implements ports.ReplayDecoder.
func (*Decoder) Decode(path string) (*domain.Game, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay document: %w", err)
	}

	var game domain.Game
	if err := json.Unmarshal(raw, &game); err != nil {
		return nil, fmt.Errorf("parse replay document %s: %w", path, err)
	}
	if game.FrameCount < 0 {
		return nil, fmt.Errorf("replay document %s: negative frame count", path)
	}
	return &game, nil
}
