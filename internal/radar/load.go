package radar

import (
	"fmt"
	"time"

	billy "github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/agentic-research/radar/internal/config"
	"github.com/agentic-research/radar/internal/dataset"
	"github.com/agentic-research/radar/internal/ingest"
	"github.com/agentic-research/radar/internal/logger"
)

// Open loads the named domain (the configured selection when empty) from fs
// and builds an engine over it. Data files are resolved under cfg.DataDir.
func Open(fs billy.Filesystem, cfg *config.Config, domain string, log zerolog.Logger) (*Engine, error) {
	if domain == "" {
		domain = cfg.SelectedDomain
	}
	d, err := cfg.Domain(domain)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	src := d.Source()
	src.File = fs.Join(cfg.DataDir, src.File)
	tbl, err := ingest.Load(fs, src)
	if err != nil {
		return nil, fmt.Errorf("load domain %q: %w", d.Name, err)
	}
	ds, err := dataset.New(tbl, dataset.Options{Domain: d.Name, Purposes: cfg.PurposeNames()})
	if err != nil {
		return nil, fmt.Errorf("load domain %q: %w", d.Name, err)
	}
	logger.LogLoad(log, d.Name, src.File, ds.Len(), ds.Schema().Missing, time.Since(start))

	return New(ds, Options{
		Palettes:     cfg.PaletteMap(),
		DefaultView:  cfg.DefaultView,
		Descriptions: cfg.Descriptions(),
		CacheSize:    cfg.CacheSize,
		Logger:       logger.Component(log, "engine"),
	})
}
