// Package config loads the radar configuration: which domains exist and where
// their data lives, the colour palettes, and the purpose catalogue.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/agentic-research/radar/internal/ingest"
)

var ErrUnknownDomain = errors.New("unknown domain")

// paletteColumn is the CSV column holding palette colours.
const paletteColumn = "hex"

// Config holds all radar configuration.
type Config struct {
	DataDir        string
	SelectedDomain string
	DefaultView    string
	CacheSize      int
	Domains        []Domain
	Palettes       []Palette
	Purposes       []Purpose
	Log            LogConfig
}

// Domain maps a domain name to its data source.
type Domain struct {
	Name     string
	File     string
	Table    string
	Selector string
}

// Source returns the ingest source for d.
func (d Domain) Source() ingest.Source {
	return ingest.Source{File: d.File, Table: d.Table, Selector: d.Selector}
}

// Palette is a named, ordered colour list.
type Palette struct {
	Name   string
	Colors []string
	File   string
}

// Purpose is one entry of the purpose catalogue.
type Purpose struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

type fileConfig struct {
	DataDir        string         `hcl:"data_dir,optional"`
	SelectedDomain string         `hcl:"selected_domain,optional"`
	DefaultView    string         `hcl:"default_view,optional"`
	PurposesFile   string         `hcl:"purposes_file,optional"`
	CacheSize      int            `hcl:"cache_size,optional"`
	Domains        []domainBlock  `hcl:"domain,block"`
	Palettes       []paletteBlock `hcl:"palette,block"`
	Log            *logBlock      `hcl:"log,block"`
}

type domainBlock struct {
	Name     string `hcl:"name,label"`
	File     string `hcl:"file"`
	Table    string `hcl:"table,optional"`
	Selector string `hcl:"selector,optional"`
}

type paletteBlock struct {
	Name   string   `hcl:"name,label"`
	Colors []string `hcl:"colors,optional"`
	File   string   `hcl:"file,optional"`
}

type logBlock struct {
	Level  string `hcl:"level,optional"`
	Pretty bool   `hcl:"pretty,optional"`
}

type purposeFile struct {
	Purposes []Purpose `yaml:"purposes"`
}

// Load reads the HCL file name from fs, then any purpose catalogue and
// palette files it references. Palette files are read from the data directory.
func Load(fs billy.Filesystem, name string) (*Config, error) {
	src, err := readFile(fs, name)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := hclsimple.Decode(name, src, nil, &fc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	def := Default()
	cfg := &Config{
		DataDir:        orDefault(fc.DataDir, def.DataDir),
		SelectedDomain: orDefault(fc.SelectedDomain, def.SelectedDomain),
		DefaultView:    orDefault(fc.DefaultView, def.DefaultView),
		CacheSize:      fc.CacheSize,
		Purposes:       def.Purposes,
		Log:            def.Log,
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = def.CacheSize
	}
	if fc.Log != nil {
		cfg.Log = LogConfig{Level: orDefault(fc.Log.Level, def.Log.Level), Pretty: fc.Log.Pretty}
	}
	for _, d := range fc.Domains {
		cfg.Domains = append(cfg.Domains, Domain(d))
	}
	if len(cfg.Domains) == 0 {
		cfg.Domains = def.Domains
	}

	for _, p := range fc.Palettes {
		pal := Palette{Name: p.Name, Colors: p.Colors, File: p.File}
		if pal.File != "" && len(pal.Colors) == 0 {
			pal.Colors, err = readPalette(fs, fs.Join(cfg.DataDir, pal.File))
			if err != nil {
				return nil, fmt.Errorf("palette %q: %w", p.Name, err)
			}
		}
		cfg.Palettes = append(cfg.Palettes, pal)
	}
	if len(cfg.Palettes) == 0 {
		cfg.Palettes = def.Palettes
	}

	if fc.PurposesFile != "" {
		cfg.Purposes, err = loadPurposes(fs, fc.PurposesFile)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross references between settings.
func (c *Config) Validate() error {
	if _, err := c.Domain(c.SelectedDomain); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for _, d := range c.Domains {
		if seen[d.Name] {
			return fmt.Errorf("domain %q declared twice", d.Name)
		}
		seen[d.Name] = true
	}
	for _, p := range c.Palettes {
		if len(p.Colors) == 0 {
			return fmt.Errorf("palette %q has no colors", p.Name)
		}
	}
	if len(c.Purposes) == 0 {
		return errors.New("purpose catalogue is empty")
	}
	for _, p := range c.Purposes {
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("purpose with empty name")
		}
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// Domain returns the named domain.
func (c *Config) Domain(name string) (Domain, error) {
	for _, d := range c.Domains {
		if d.Name == name {
			return d, nil
		}
	}
	return Domain{}, fmt.Errorf("%w: %q", ErrUnknownDomain, name)
}

// PaletteMap returns palettes keyed by name.
func (c *Config) PaletteMap() map[string][]string {
	m := make(map[string][]string, len(c.Palettes))
	for _, p := range c.Palettes {
		m[p.Name] = p.Colors
	}
	return m
}

// PurposeNames returns the catalogue order.
func (c *Config) PurposeNames() []string {
	names := make([]string, len(c.Purposes))
	for i, p := range c.Purposes {
		names[i] = p.Name
	}
	return names
}

// Descriptions returns purpose descriptions keyed by name.
func (c *Config) Descriptions() map[string]string {
	m := make(map[string]string, len(c.Purposes))
	for _, p := range c.Purposes {
		m[p.Name] = strings.TrimSpace(p.Description)
	}
	return m
}

func loadPurposes(fs billy.Filesystem, name string) ([]Purpose, error) {
	src, err := readFile(fs, name)
	if err != nil {
		return nil, err
	}
	var pf purposeFile
	if err := yaml.Unmarshal(src, &pf); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return pf.Purposes, nil
}

func readPalette(fs billy.Filesystem, name string) ([]string, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }() // read-only
	tbl, err := ingest.ReadCSV(f)
	if err != nil {
		return nil, err
	}
	return ingest.Column(tbl, paletteColumn)
}

func readFile(fs billy.Filesystem, name string) ([]byte, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }() // read-only
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
