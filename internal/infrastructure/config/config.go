package config

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/slipscope/internal/util"
)

// Analyzer holds configuration for the analysis CLI.
type Analyzer struct {
	HistoryDBPath string `envconfig:"SLIPSCOPE_HISTORY_DB"`
	CacheFileName string `envconfig:"SLIPSCOPE_CACHE_FILE"`
	ReplayGlob    string `envconfig:"SLIPSCOPE_REPLAY_GLOB"`
}

// LoadAnalyzer loads analyzer configuration from environment variables.
// The history database defaults to the XDG data directory.
func LoadAnalyzer() (*Analyzer, error) {
	var cfg Analyzer
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.HistoryDBPath == "" {
		dataDir, err := util.GetXDGDataDir()
		if err != nil {
			return nil, err
		}
		cfg.HistoryDBPath = filepath.Join(dataDir, "history.db")
	}
	return &cfg, nil
}
