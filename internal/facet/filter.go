package facet

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/agentic-research/radar/api"
	"github.com/agentic-research/radar/internal/dataset"
)

// Predicate is one active facet restriction: the set of rows it keeps.
type Predicate struct {
	Facet api.Facet
	Value string
	rows  *roaring.Bitmap
}

// Rows returns the rows the predicate keeps. The bitmap is shared with the
// index and must not be modified.
func (p Predicate) Rows() *roaring.Bitmap { return p.rows }

// Predicates returns one predicate per active facet of state, in facet order.
// Inactive facets ("all" or empty) produce nothing. The sentinel "none" and
// values absent from the dataset keep no rows.
func (ix *Index) Predicates(state api.FilterState) []Predicate {
	state = state.Normalize()
	var preds []Predicate
	for _, f := range api.Facets {
		v := state.Value(f)
		if !api.IsActive(v) {
			continue
		}
		preds = append(preds, Predicate{Facet: f, Value: v, rows: ix.rowsFor(f, v)})
	}
	return preds
}

func (ix *Index) rowsFor(f api.Facet, v string) *roaring.Bitmap {
	if v == api.None {
		return empty
	}
	switch f {
	case api.FacetSearch:
		return ix.search.get(v)
	case api.FacetPurpose:
		if p := ix.purpose(v); p != nil {
			return p.flagged
		}
		return empty
	case api.FacetRetention:
		return ix.retention.get(v)
	case api.FacetStorageTechnology:
		return ix.tech.get(v)
	case api.FacetStorageType:
		return ix.storageTypeRows(v)
	}
	return empty
}

// Selection is the outcome of a filter pass. An empty selection is a valid
// result, not an error.
type Selection struct {
	ds   *dataset.Dataset
	rows *roaring.Bitmap
}

// Filter applies every active facet of state to the whole dataset.
func (ix *Index) Filter(state api.FilterState) Selection {
	return ix.Apply(ix.universe, state)
}

// Apply narrows base by every active facet of state. Applying the same state
// to its own result returns the same rows.
func (ix *Index) Apply(base *roaring.Bitmap, state api.FilterState) Selection {
	return Selection{ds: ix.ds, rows: Intersect(base, ix.Predicates(state))}
}

// Intersect ANDs base with each predicate in the given order. base is not modified.
func Intersect(base *roaring.Bitmap, preds []Predicate) *roaring.Bitmap {
	out := base.Clone()
	for _, p := range preds {
		if out.IsEmpty() {
			break
		}
		out.And(p.rows)
	}
	return out
}

// Bitmap returns a copy of the selected row indices.
func (s Selection) Bitmap() *roaring.Bitmap { return s.rows.Clone() }

// Len is the number of selected rows.
func (s Selection) Len() int { return int(s.rows.GetCardinality()) }

// Empty reports whether no row survived the filters.
func (s Selection) Empty() bool { return s.rows.IsEmpty() }

// Contains reports whether row i is selected.
func (s Selection) Contains(i int) bool { return s.rows.Contains(uint32(i)) }

// Rows returns the selected rows in dataset order.
func (s Selection) Rows() []dataset.Row {
	out := make([]dataset.Row, 0, s.rows.GetCardinality())
	it := s.rows.Iterator()
	for it.HasNext() {
		out = append(out, s.ds.Row(int(it.Next())))
	}
	return out
}
