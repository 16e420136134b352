package radar

import (
	"sync"

	billy "github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/agentic-research/radar/api"
	"github.com/agentic-research/radar/internal/config"
)

// Switcher serves one selected domain at a time. Select swaps the active
// engine; engines are loaded on first selection and kept.
type Switcher struct {
	fs  billy.Filesystem
	cfg *config.Config
	log zerolog.Logger

	mu      sync.RWMutex
	domain  string
	current *Engine
	loaded  map[string]*Engine
}

// NewSwitcher opens the configured selected domain.
func NewSwitcher(fs billy.Filesystem, cfg *config.Config, log zerolog.Logger) (*Switcher, error) {
	s := &Switcher{fs: fs, cfg: cfg, log: log, loaded: make(map[string]*Engine)}
	if err := s.Select(cfg.SelectedDomain); err != nil {
		return nil, err
	}
	return s, nil
}

// Select makes domain the active one; an empty name selects the configured
// domain. On error the previous selection stays.
func (s *Switcher) Select(domain string) error {
	if domain == "" {
		domain = s.cfg.SelectedDomain
	}
	s.mu.RLock()
	e, ok := s.loaded[domain]
	s.mu.RUnlock()

	if !ok {
		var err error
		e, err = Open(s.fs, s.cfg, domain, s.log)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.loaded[domain]; ok {
		// Lost a race with a concurrent Select of the same domain.
		e = prev
	} else {
		s.loaded[domain] = e
	}
	s.domain = domain
	s.current = e
	return nil
}

// Domain returns the active domain name.
func (s *Switcher) Domain() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.domain
}

// Current returns the active engine.
func (s *Switcher) Current() *Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Recompute delegates to the active engine.
func (s *Switcher) Recompute(state api.FilterState) *api.Result {
	return s.Current().Recompute(state)
}
