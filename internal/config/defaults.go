package config

import (
	"github.com/agentic-research/radar/api"
	"github.com/agentic-research/radar/internal/dataset"
)

const (
	DefaultDataDir   = "data"
	DefaultDomain    = "Concepts"
	DefaultCacheSize = 64
)

// defaultColors is the GOV.UK colour set used when no palette is configured.
var defaultColors = []string{
	"#1d70b8", "#00703c", "#f47738", "#4c2c92", "#d4351c",
	"#28a197", "#912b88", "#b58840", "#5694ca", "#85994b",
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	purposes := make([]Purpose, len(dataset.DefaultPurposes))
	for i, name := range dataset.DefaultPurposes {
		purposes[i] = Purpose{Name: name}
	}
	return &Config{
		DataDir:        DefaultDataDir,
		SelectedDomain: DefaultDomain,
		DefaultView:    api.DefaultView,
		CacheSize:      DefaultCacheSize,
		Domains:        []Domain{{Name: DefaultDomain, File: "concepts.csv"}},
		Palettes:       []Palette{{Name: api.DefaultView, Colors: append([]string(nil), defaultColors...)}},
		Purposes:       purposes,
		Log:            LogConfig{Level: "info"},
	}
}
