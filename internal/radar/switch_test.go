package radar

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/radar/api"
	"github.com/agentic-research/radar/internal/config"
)

func TestSwitcher(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "data/concepts.csv", []byte("level 1,Audit\nAccount,y\nUsage,\n"), 0o644))
	require.NoError(t, util.WriteFile(fs, "data/events.json", []byte(`[{"level 1": "Sign in", "Audit": "y"}]`), 0o644))

	cfg := config.Default()
	cfg.Domains = append(cfg.Domains,
		config.Domain{Name: "Events", File: "events.json"},
		config.Domain{Name: "Broken", File: "broken.xlsx"},
	)

	s, err := NewSwitcher(fs, cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "Concepts", s.Domain())
	assert.Equal(t, 2, s.Recompute(api.DefaultFilterState()).Rows)

	concepts := s.Current()
	require.NoError(t, s.Select("Events"))
	assert.Equal(t, "Events", s.Domain())
	res := s.Recompute(api.DefaultFilterState())
	assert.Equal(t, 1, res.Rows)
	root, ok := res.Hierarchy.Root()
	require.True(t, ok)
	assert.Equal(t, "Events", root.Label)

	// Failed selections keep the active domain.
	assert.Error(t, s.Select("Broken"))
	assert.ErrorIs(t, s.Select("Nope"), config.ErrUnknownDomain)
	assert.Equal(t, "Events", s.Domain())

	// Loaded engines are reused.
	require.NoError(t, s.Select("Concepts"))
	assert.Same(t, concepts, s.Current())

	// An empty name means the configured domain, under its own name.
	require.NoError(t, s.Select("Events"))
	require.NoError(t, s.Select(""))
	assert.Equal(t, "Concepts", s.Domain())
	assert.Same(t, concepts, s.Current())
	assert.Len(t, s.loaded, 2)
}
