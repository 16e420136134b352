package dataset

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DomainColumn holds the root label of every path.
	DomainColumn = "domain"
	// LevelCount is the number of hierarchy level columns after the domain.
	LevelCount = 7
	// FlagMarker is the literal value that marks a purpose as applicable.
	FlagMarker = "y"
)

// DefaultPurposes are the governance purposes used when no catalogue is configured.
var DefaultPurposes = []string{
	"Authentication",
	"Identity",
	"User experience",
	"Analytics",
	"Audit",
}

var ErrNoColumns = errors.New("dataset has no columns")

// LevelColumn returns the header of level i (1-based).
func LevelColumn(i int) string { return fmt.Sprintf("level %d", i) }

// RetentionColumn returns the retention header for purpose p.
func RetentionColumn(p string) string { return p + " retention" }

// StorageTechnologyColumn returns the storage technology header for purpose p.
func StorageTechnologyColumn(p string) string { return p + " Storage Technology" }

// PurposeColumns maps one purpose to its column positions. A position of -1
// means the column is absent and contributes no data.
type PurposeColumns struct {
	Purpose           string
	Flag              int
	Retention         int
	StorageTechnology int
}

// Schema is the static facet → column mapping for one table. It is resolved
// once at load time so that filtering never inspects header names.
type Schema struct {
	Columns  []string
	Domain   int
	Levels   [LevelCount]int
	Purposes []PurposeColumns
	// Missing lists expected headers that the table does not carry.
	Missing []string
}

// NewSchema resolves the expected headers against columns. Header lookup is
// exact first, then case-insensitive with surrounding space ignored.
func NewSchema(columns []string, purposes []string) (*Schema, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	exact := make(map[string]int, len(columns))
	folded := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := exact[c]; !ok {
			exact[c] = i
		}
		k := strings.ToLower(strings.TrimSpace(c))
		if _, ok := folded[k]; !ok {
			folded[k] = i
		}
	}

	s := &Schema{Columns: columns}
	lookup := func(name string) int {
		if i, ok := exact[name]; ok {
			return i
		}
		if i, ok := folded[strings.ToLower(name)]; ok {
			return i
		}
		s.Missing = append(s.Missing, name)
		return -1
	}

	s.Domain = lookup(DomainColumn)
	for i := range s.Levels {
		s.Levels[i] = lookup(LevelColumn(i + 1))
	}
	if len(purposes) == 0 {
		purposes = DefaultPurposes
	}
	seen := make(map[string]bool, len(purposes))
	for _, p := range purposes {
		if seen[p] {
			return nil, fmt.Errorf("duplicate purpose %q", p)
		}
		seen[p] = true
		s.Purposes = append(s.Purposes, PurposeColumns{
			Purpose:           p,
			Flag:              lookup(p),
			Retention:         lookup(RetentionColumn(p)),
			StorageTechnology: lookup(StorageTechnologyColumn(p)),
		})
	}
	return s, nil
}

// PurposeNames returns the declared purposes in order.
func (s *Schema) PurposeNames() []string {
	names := make([]string, len(s.Purposes))
	for i, p := range s.Purposes {
		names[i] = p.Purpose
	}
	return names
}

// PurposeIndex returns the position of purpose name in Purposes, or -1.
func (s *Schema) PurposeIndex(name string) int {
	for i, p := range s.Purposes {
		if p.Purpose == name {
			return i
		}
	}
	return -1
}

// HasStorageTechnology reports whether any storage technology column exists.
func (s *Schema) HasStorageTechnology() bool {
	for _, p := range s.Purposes {
		if p.StorageTechnology >= 0 {
			return true
		}
	}
	return false
}
