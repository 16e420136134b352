// Package ingest reads data radar tables from CSV, JSON and SQLite sources.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/spf13/cast"

	"github.com/agentic-research/radar/internal/dataset"
)

var ErrUnsupportedFormat = errors.New("unsupported data format")

// Source describes where a domain's table lives.
type Source struct {
	// File is relative to the loader's filesystem root.
	File string
	// Table names the SQLite table to read (default "radar").
	Table string
	// Selector is a JSONPath that yields one object per row (default "$[*]").
	Selector string
}

// Load picks a reader from the file extension and returns the raw table.
func Load(fs billy.Filesystem, src Source) (dataset.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(src.File)); ext {
	case ".csv":
		f, err := fs.Open(src.File)
		if err != nil {
			return dataset.Table{}, fmt.Errorf("open %s: %w", src.File, err)
		}
		defer func() { _ = f.Close() }() // read-only
		return ReadCSV(f)
	case ".json":
		f, err := fs.Open(src.File)
		if err != nil {
			return dataset.Table{}, fmt.Errorf("open %s: %w", src.File, err)
		}
		defer func() { _ = f.Close() }() // read-only
		data, err := io.ReadAll(f)
		if err != nil {
			return dataset.Table{}, fmt.Errorf("read %s: %w", src.File, err)
		}
		return ReadJSON(data, src.Selector)
	case ".db", ".sqlite", ".sqlite3":
		// SQLite needs a real path, and opening a missing file would create it.
		if _, err := fs.Stat(src.File); err != nil {
			return dataset.Table{}, fmt.Errorf("stat %s: %w", src.File, err)
		}
		return ReadSQLite(filepath.Join(fs.Root(), src.File), src.Table)
	default:
		return dataset.Table{}, fmt.Errorf("%w: %q (want .csv, .json, .db)", ErrUnsupportedFormat, ext)
	}
}

// cellString renders a decoded JSON or SQL value as a table cell.
func cellString(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(cast.ToString(v))
}
