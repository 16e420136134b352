// Package dataset holds the immutable, typed snapshot of a data radar table.
package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoDomain = errors.New("dataset has no domain label")

// Table is the untyped output of a loader: a header and string cells.
type Table struct {
	Columns []string
	Records [][]string
}

// PurposeValues are a row's cells for one purpose.
type PurposeValues struct {
	Flagged           bool
	Retention         string
	StorageTechnology string
}

// Row is one catalogue entry.
type Row struct {
	Index  int
	Domain string
	Levels [LevelCount]string
	// Purposes is aligned with Schema.Purposes.
	Purposes    []PurposeValues
	StorageType StorageType
}

// Path returns the domain followed by the level labels up to the first
// empty level. A row with no levels yields the domain alone.
func (r Row) Path() []string {
	path := make([]string, 1, LevelCount+1)
	path[0] = r.Domain
	for _, l := range r.Levels {
		if l == "" {
			break
		}
		path = append(path, l)
	}
	return path
}

// SearchValues returns the non-empty domain and level cells, the cells a
// search selection is matched against.
func (r Row) SearchValues() []string {
	vals := []string{r.Domain}
	for _, l := range r.Levels {
		if l != "" {
			vals = append(vals, l)
		}
	}
	return vals
}

// StorageTechnologies returns the row's non-empty storage technology cells.
func (r Row) StorageTechnologies() []string {
	var techs []string
	for _, p := range r.Purposes {
		if p.StorageTechnology != "" {
			techs = append(techs, p.StorageTechnology)
		}
	}
	return techs
}

// Options control how a Table becomes a Dataset.
type Options struct {
	// Domain overrides the table's domain column for every row.
	Domain string
	// Purposes is the ordered purpose catalogue; DefaultPurposes when empty.
	Purposes []string
}

// Dataset is a read-only snapshot. Nothing mutates it after New returns, so
// it can be shared between concurrent recompute passes.
type Dataset struct {
	domain string
	schema *Schema
	rows   []Row
}

// New types every record of t and classifies its storage type.
func New(t Table, opts Options) (*Dataset, error) {
	schema, err := NewSchema(t.Columns, opts.Purposes)
	if err != nil {
		return nil, fmt.Errorf("resolve schema: %w", err)
	}

	domain := strings.TrimSpace(opts.Domain)
	if domain == "" && schema.Domain >= 0 {
		for _, rec := range t.Records {
			if d := cell(rec, schema.Domain); d != "" {
				domain = d
				break
			}
		}
	}
	if domain == "" {
		return nil, ErrNoDomain
	}

	ds := &Dataset{
		domain: domain,
		schema: schema,
		rows:   make([]Row, 0, len(t.Records)),
	}
	for i, rec := range t.Records {
		row := Row{
			Index:    i,
			Domain:   domain,
			Purposes: make([]PurposeValues, len(schema.Purposes)),
		}
		for l, col := range schema.Levels {
			row.Levels[l] = cell(rec, col)
		}
		for p, pc := range schema.Purposes {
			row.Purposes[p] = PurposeValues{
				Flagged:           cell(rec, pc.Flag) == FlagMarker,
				Retention:         cell(rec, pc.Retention),
				StorageTechnology: cell(rec, pc.StorageTechnology),
			}
		}
		row.StorageType = Classify(row.StorageTechnologies())
		ds.rows = append(ds.rows, row)
	}
	return ds, nil
}

// cell returns the trimmed value at col, or "" for absent columns and short records.
func cell(rec []string, col int) string {
	if col < 0 || col >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[col])
}

func (d *Dataset) Domain() string  { return d.domain }
func (d *Dataset) Schema() *Schema { return d.schema }
func (d *Dataset) Len() int        { return len(d.rows) }

// Row returns row i.
func (d *Dataset) Row(i int) Row { return d.rows[i] }

// Rows returns a copy of the row slice.
func (d *Dataset) Rows() []Row {
	out := make([]Row, len(d.rows))
	copy(out, d.rows)
	return out
}
