// Package radar ties the facet index, option deriver and hierarchy builder
// together: one Recompute call turns a FilterState into everything a view
// needs to redraw.
package radar

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agentic-research/radar/api"
	"github.com/agentic-research/radar/internal/dataset"
	"github.com/agentic-research/radar/internal/facet"
	"github.com/agentic-research/radar/internal/hierarchy"
)

// EmptyPlaceholder replaces the chart when no rows match.
const EmptyPlaceholder = "No data available for selected filters"

// Purpose card text.
const (
	AllPurposesText   = "All purposes are shown."
	NoDescriptionText = "No description available."
)

// Options configures an Engine.
type Options struct {
	// Palettes maps view names to colour lists.
	Palettes map[string][]string
	// DefaultView is used for unknown or empty view names.
	DefaultView string
	// Descriptions maps purpose names to card text.
	Descriptions map[string]string
	// CacheSize bounds memoised results; zero disables caching.
	CacheSize int
	Logger    zerolog.Logger
}

// Engine recomputes radar views over one immutable dataset. It is safe for
// concurrent use.
type Engine struct {
	ix           *facet.Index
	palettes     map[string][]string
	defaultView  string
	descriptions map[string]string
	cache        *lru.Cache[api.FilterState, *api.Result]
	log          zerolog.Logger

	mu     sync.Mutex
	hits   uint64
	misses uint64
}

// New indexes ds and returns an engine over it.
func New(ds *dataset.Dataset, opts Options) (*Engine, error) {
	e := &Engine{
		ix:           facet.NewIndex(ds),
		palettes:     opts.Palettes,
		defaultView:  opts.DefaultView,
		descriptions: opts.Descriptions,
		log:          opts.Logger,
	}
	if e.defaultView == "" {
		e.defaultView = api.DefaultView
	}
	if opts.CacheSize > 0 {
		c, err := lru.New[api.FilterState, *api.Result](opts.CacheSize)
		if err != nil {
			return nil, err
		}
		e.cache = c
	}
	return e, nil
}

// Dataset returns the snapshot the engine serves.
func (e *Engine) Dataset() *dataset.Dataset { return e.ix.Dataset() }

// Index exposes the facet index for direct queries.
func (e *Engine) Index() *facet.Index { return e.ix }

// Recompute filters the dataset by state and derives options, hierarchy and
// purpose card. The returned Result may be shared and must not be mutated.
func (e *Engine) Recompute(state api.FilterState) *api.Result {
	start := time.Now()
	state = state.Normalize()
	if _, ok := e.palettes[state.View]; !ok {
		state.View = e.defaultView
	}

	if e.cache != nil {
		if res, ok := e.cache.Get(state); ok {
			e.count(true)
			e.log.Debug().Str("view", state.View).Bool("cache_hit", true).Msg("recompute")
			return res
		}
	}

	sel := e.ix.Filter(state)
	res := &api.Result{
		State:   state,
		Rows:    sel.Len(),
		Empty:   sel.Empty(),
		Options: e.options(state),
		Purpose: e.PurposeCard(state.Purpose),
	}
	if res.Empty {
		res.Placeholder = EmptyPlaceholder
	} else {
		res.Hierarchy = hierarchy.Build(sel.Rows(), e.ix.Dataset().Schema(), state.Depth, e.palette(state.View))
	}

	if e.cache != nil {
		e.cache.Add(state, res)
	}
	e.count(false)
	e.log.Debug().
		Int("rows", res.Rows).
		Int("depth", state.Depth).
		Str("view", state.View).
		Bool("cache_hit", false).
		Dur("duration", time.Since(start)).
		Msg("recompute")
	return res
}

// SearchOptions returns live search suggestions for in-progress text.
func (e *Engine) SearchOptions(state api.FilterState, typed string) api.OptionSet {
	return e.ix.SearchOptions(state.Normalize(), typed)
}

// PurposeCard describes the selected purpose.
func (e *Engine) PurposeCard(purpose string) api.PurposeCard {
	if !api.IsActive(purpose) {
		return api.PurposeCard{Description: AllPurposesText}
	}
	desc := e.descriptions[purpose]
	if desc == "" {
		desc = NoDescriptionText
	}
	return api.PurposeCard{Title: purpose, Description: desc, Visible: true}
}

// CacheStats reports result cache hits and misses.
func (e *Engine) CacheStats() (hits, misses uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hits, e.misses
}

func (e *Engine) count(hit bool) {
	e.mu.Lock()
	if hit {
		e.hits++
	} else {
		e.misses++
	}
	e.mu.Unlock()
}

// options derives each facet's OptionSet concurrently. Derivations read the
// shared index and never fail.
func (e *Engine) options(state api.FilterState) map[api.Facet]api.OptionSet {
	sets := make([]api.OptionSet, len(api.Facets))
	var g errgroup.Group
	for i, f := range api.Facets {
		g.Go(func() error {
			sets[i] = e.ix.Options(f, state)
			return nil
		})
	}
	_ = g.Wait() // derivations return nil

	out := make(map[api.Facet]api.OptionSet, len(sets))
	for i, f := range api.Facets {
		out[f] = sets[i]
	}
	return out
}

func (e *Engine) palette(view string) []string {
	if p, ok := e.palettes[view]; ok {
		return p
	}
	return e.palettes[e.defaultView]
}
