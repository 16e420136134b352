package api

import "strings"

// All is the facet value meaning "no restriction".
const All = "all"

// None is the sentinel option value offered when a facet has no candidates.
// Selecting it matches zero rows.
const None = "none"

// Option labels shared by every OptionSet.
const (
	ShowAllLabel = "Show all"
	NoDataLabel  = "No data found"
)

// DefaultView names the palette used when a FilterState does not pick one.
const DefaultView = "Default"

// Depth bounds for the hierarchy. Depth 2 is domain + level 1; depth 8 is the
// full domain + level 1..7 path.
const (
	MinDepth = 2
	MaxDepth = 8
)

// Facet identifies one selectable filter dimension.
type Facet string

const (
	FacetSearch            Facet = "search"
	FacetPurpose           Facet = "purpose"
	FacetRetention         Facet = "retention"
	FacetStorageTechnology Facet = "storage_technology"
	FacetStorageType       Facet = "storage_type"
)

// Facets lists the option-bearing facets in display order.
var Facets = []Facet{
	FacetSearch,
	FacetPurpose,
	FacetRetention,
	FacetStorageTechnology,
	FacetStorageType,
}

// FilterState is the set of facet selections for one recompute pass.
// It is a value type: the presentation layer owns it and passes copies in.
type FilterState struct {
	Search            string `json:"search,omitempty"`
	Purpose           string `json:"purpose"`
	Retention         string `json:"retention"`
	StorageTechnology string `json:"storage_technology"`
	StorageType       string `json:"storage_type"`
	Depth             int    `json:"depth"`
	// View selects the colour palette.
	View string `json:"view"`
}

// DefaultFilterState returns the state shown before the user touches anything.
func DefaultFilterState() FilterState {
	return FilterState{
		Purpose:           All,
		Retention:         All,
		StorageTechnology: All,
		StorageType:       All,
		Depth:             MaxDepth,
		View:              DefaultView,
	}
}

// Normalize trims selections, maps empty ones to All, clamps Depth and fills
// View. Search stays empty when unset; an empty search is inactive either way.
// Cells are trimmed at load time, so trimming here keeps matches exact.
func (s FilterState) Normalize() FilterState {
	s.Search = strings.TrimSpace(s.Search)
	s.Purpose = strings.TrimSpace(s.Purpose)
	s.Retention = strings.TrimSpace(s.Retention)
	s.StorageTechnology = strings.TrimSpace(s.StorageTechnology)
	s.StorageType = strings.TrimSpace(s.StorageType)
	s.View = strings.TrimSpace(s.View)
	if s.Search == All {
		s.Search = ""
	}
	if s.Purpose == "" {
		s.Purpose = All
	}
	if s.Retention == "" {
		s.Retention = All
	}
	if s.StorageTechnology == "" {
		s.StorageTechnology = All
	}
	if s.StorageType == "" {
		s.StorageType = All
	}
	s.Depth = ClampDepth(s.Depth)
	if s.View == "" {
		s.View = DefaultView
	}
	return s
}

// Value returns the selection for f.
func (s FilterState) Value(f Facet) string {
	switch f {
	case FacetSearch:
		return s.Search
	case FacetPurpose:
		return s.Purpose
	case FacetRetention:
		return s.Retention
	case FacetStorageTechnology:
		return s.StorageTechnology
	case FacetStorageType:
		return s.StorageType
	}
	return ""
}

// With returns a copy of s with facet f set to v.
func (s FilterState) With(f Facet, v string) FilterState {
	switch f {
	case FacetSearch:
		s.Search = v
	case FacetPurpose:
		s.Purpose = v
	case FacetRetention:
		s.Retention = v
	case FacetStorageTechnology:
		s.StorageTechnology = v
	case FacetStorageType:
		s.StorageType = v
	}
	return s
}

// Without returns a copy of s with facet f reset to All.
func (s FilterState) Without(f Facet) FilterState {
	if f == FacetSearch {
		return s.With(f, "")
	}
	return s.With(f, All)
}

// Active reports whether facet f restricts rows.
func (s FilterState) Active(f Facet) bool {
	return IsActive(s.Value(f))
}

// IsActive reports whether a facet value restricts rows.
func IsActive(v string) bool {
	return v != "" && v != All
}

// ClampDepth bounds d to [MinDepth, MaxDepth]. Zero means "not set" and maps
// to MaxDepth.
func ClampDepth(d int) int {
	switch {
	case d == 0:
		return MaxDepth
	case d < MinDepth:
		return MinDepth
	case d > MaxDepth:
		return MaxDepth
	}
	return d
}
