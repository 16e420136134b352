package facet

import (
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/agentic-research/radar/api"
	"github.com/agentic-research/radar/internal/dataset"
)

// candidates returns the rows left by every active facet except f.
func (ix *Index) candidates(f api.Facet, state api.FilterState) *roaring.Bitmap {
	return Intersect(ix.universe, ix.Predicates(state.Without(f)))
}

// Options derives the selectable values of facet f under state. The facet's
// own selection is ignored; every other active facet narrows the candidates.
func (ix *Index) Options(f api.Facet, state api.FilterState) api.OptionSet {
	switch f {
	case api.FacetSearch:
		return ix.SearchOptions(state, state.Search)
	case api.FacetPurpose:
		return ix.purposeOptions(state)
	case api.FacetRetention:
		return ix.columnOptions(state, api.FacetRetention)
	case api.FacetStorageTechnology:
		return ix.columnOptions(state, api.FacetStorageTechnology)
	case api.FacetStorageType:
		return ix.storageTypeOptions(state)
	}
	return api.NoDataOptions()
}

// SearchOptions lists level values in first-seen order, keeping those whose
// text contains typed (case-insensitive). This is the autocomplete surface;
// it never filters rows.
func (ix *Index) SearchOptions(state api.FilterState, typed string) api.OptionSet {
	cand := ix.candidates(api.FacetSearch, state)
	needle := strings.ToLower(strings.TrimSpace(typed))

	var opts []api.Option
	for _, v := range ix.levels.order {
		if needle != "" && !strings.Contains(strings.ToLower(v), needle) {
			continue
		}
		if ix.levels.get(v).Intersects(cand) {
			opts = append(opts, api.Option{Label: v, Value: v})
		}
	}
	return withShowAll(opts)
}

// purposeOptions offers purposes in catalogue order that flag at least one candidate.
func (ix *Index) purposeOptions(state api.FilterState) api.OptionSet {
	cand := ix.candidates(api.FacetPurpose, state)

	var opts []api.Option
	for _, p := range ix.purposes {
		if p.hasFlag && p.flagged.Intersects(cand) {
			opts = append(opts, api.Option{Label: p.name, Value: p.name})
		}
	}
	return withShowAll(opts)
}

// columnOptions reads retention or storage technology values. With no purpose
// selected it unions every purpose column; with one selected it reads only that
// purpose's column, on rows the purpose flags.
func (ix *Index) columnOptions(state api.FilterState, f api.Facet) api.OptionSet {
	cand := ix.candidates(f, state)

	var values *valueIndex
	if state.Active(api.FacetPurpose) {
		p := ix.purpose(state.Purpose)
		if p == nil {
			return api.NoDataOptions()
		}
		switch {
		case f == api.FacetRetention && p.hasRet:
			values = p.retention
		case f == api.FacetStorageTechnology && p.hasTech:
			values = p.tech
		default:
			return api.NoDataOptions()
		}
	} else if f == api.FacetRetention {
		values = ix.retention
	} else {
		values = ix.tech
	}

	var opts []api.Option
	for _, v := range values.order {
		if values.get(v).Intersects(cand) {
			opts = append(opts, api.Option{Label: v, Value: v})
		}
	}
	sortByLabel(opts)
	return withShowAll(opts)
}

// storageTypeOptions offers the derived types present among the candidates.
func (ix *Index) storageTypeOptions(state api.FilterState) api.OptionSet {
	cand := ix.candidates(api.FacetStorageType, state)

	var opts []api.Option
	for _, st := range dataset.StorageTypes {
		if ix.types[st].Intersects(cand) {
			opts = append(opts, api.Option{Label: string(st), Value: st.Value()})
		}
	}
	sortByLabel(opts)
	return withShowAll(opts)
}

// AllOptions derives every facet's OptionSet.
func (ix *Index) AllOptions(state api.FilterState) map[api.Facet]api.OptionSet {
	out := make(map[api.Facet]api.OptionSet, len(api.Facets))
	for _, f := range api.Facets {
		out[f] = ix.Options(f, state)
	}
	return out
}

func withShowAll(opts []api.Option) api.OptionSet {
	if len(opts) == 0 {
		return api.NoDataOptions()
	}
	set := make(api.OptionSet, 0, len(opts)+1)
	set = append(set, api.ShowAll)
	return append(set, opts...)
}

func sortByLabel(opts []api.Option) {
	sort.SliceStable(opts, func(i, j int) bool { return opts[i].Label < opts[j].Label })
}
