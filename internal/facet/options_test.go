package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentic-research/radar/api"
)

func TestOptions_TwoRowScenario(t *testing.T) {
	ix := twoRowIndex(t)
	st := state(func(s *api.FilterState) { s.Purpose = "Authentication" })

	assert.Equal(t, api.OptionSet{api.ShowAll, {Label: "6 months", Value: "6 months"}},
		ix.Options(api.FacetRetention, st))
	assert.Equal(t, api.OptionSet{api.ShowAll, {Label: "Ephemeral", Value: "ephemeral"}},
		ix.Options(api.FacetStorageType, st))
	assert.Equal(t, api.OptionSet{api.ShowAll, {Label: "AWS Lambda", Value: "AWS Lambda"}},
		ix.Options(api.FacetStorageTechnology, st))

	// The purpose facet ignores its own selection.
	assert.Equal(t, []string{"Authentication", "Audit"}, ix.Options(api.FacetPurpose, st).Values())
}

func TestOptions_SearchFirstSeenColumnMajor(t *testing.T) {
	ix := catalogueIndex(t)
	opts := ix.Options(api.FacetSearch, api.DefaultFilterState())
	assert.Equal(t, []string{
		"Account", "Identity", "Usage", // level 1
		"Email", "Phone", "Passport", "Page views", // level 2
		"Number", "Expiry", "Orphan", // level 3
	}, opts.Values())
	assert.Equal(t, api.ShowAll, opts[0])
}

func TestOptions_SearchNarrowsByTypedText(t *testing.T) {
	ix := catalogueIndex(t)

	opts := ix.SearchOptions(api.DefaultFilterState(), "pa")
	assert.Equal(t, []string{"Passport", "Page views"}, opts.Values())

	// The selected search value narrows suggestions the same way.
	opts = ix.Options(api.FacetSearch, state(func(s *api.FilterState) { s.Search = "Phone" }))
	assert.Equal(t, []string{"Phone"}, opts.Values())

	assert.True(t, ix.SearchOptions(api.DefaultFilterState(), "zzz").IsNoData())
}

func TestOptions_SearchNarrowedByOtherFacets(t *testing.T) {
	ix := catalogueIndex(t)
	opts := ix.Options(api.FacetSearch, state(func(s *api.FilterState) { s.Purpose = "Analytics" }))
	assert.Equal(t, []string{"Usage", "Page views"}, opts.Values())
}

func TestOptions_PurposeDeclaredOrder(t *testing.T) {
	ix := catalogueIndex(t)
	opts := ix.Options(api.FacetPurpose, api.DefaultFilterState())
	assert.Equal(t, []string{"Authentication", "Identity", "User experience", "Analytics", "Audit"}, opts.Values())

	opts = ix.Options(api.FacetPurpose, state(func(s *api.FilterState) { s.Retention = "7 years" }))
	assert.Equal(t, []string{"Authentication", "Identity", "User experience", "Audit"}, opts.Values())

	opts = ix.Options(api.FacetPurpose, state(func(s *api.FilterState) { s.Search = "Passport" }))
	assert.Equal(t, []string{"Identity", "Audit"}, opts.Values())
}

func TestOptions_RetentionUnionAndPerPurpose(t *testing.T) {
	ix := catalogueIndex(t)

	opts := ix.Options(api.FacetRetention, api.DefaultFilterState())
	assert.Equal(t, []string{"13 months", "2 years", "6 months", "7 years"}, opts.Values())

	// With a purpose, values come from that purpose's own column.
	opts = ix.Options(api.FacetRetention, state(func(s *api.FilterState) { s.Purpose = "Audit" }))
	assert.Equal(t, []string{"7 years"}, opts.Values())

	opts = ix.Options(api.FacetRetention, state(func(s *api.FilterState) { s.Search = "Usage" }))
	assert.Equal(t, []string{"13 months"}, opts.Values())
}

func TestOptions_StorageTechnologyNarrowedByType(t *testing.T) {
	ix := catalogueIndex(t)

	opts := ix.Options(api.FacetStorageTechnology, api.DefaultFilterState())
	assert.Equal(t, []string{"AWS Lambda", "DynamoDB", "Google Analytics", "Postgres", "S3"}, opts.Values())

	opts = ix.Options(api.FacetStorageTechnology, state(func(s *api.FilterState) { s.StorageType = "ephemeral" }))
	assert.Equal(t, []string{"AWS Lambda", "S3"}, opts.Values())

	opts = ix.Options(api.FacetStorageTechnology, state(func(s *api.FilterState) {
		s.Purpose = "Identity"
		s.StorageType = "persisted"
	}))
	assert.Equal(t, []string{"Postgres"}, opts.Values())
}

func TestOptions_StorageType(t *testing.T) {
	ix := catalogueIndex(t)

	opts := ix.Options(api.FacetStorageType, api.DefaultFilterState())
	assert.Equal(t, api.OptionSet{
		api.ShowAll,
		{Label: "Ephemeral", Value: "ephemeral"},
		{Label: "Persisted", Value: "persisted"},
	}, opts)

	opts = ix.Options(api.FacetStorageType, state(func(s *api.FilterState) { s.StorageTechnology = "Postgres" }))
	assert.Equal(t, []string{"persisted"}, opts.Values())
}

func TestOptions_Sentinel(t *testing.T) {
	ix := catalogueIndex(t)

	// Analytics has no retention value shared with "Postgres" rows.
	st := state(func(s *api.FilterState) {
		s.Purpose = "Analytics"
		s.StorageTechnology = "Postgres"
	})
	opts := ix.Options(api.FacetRetention, st)
	assert.Equal(t, api.OptionSet{
		{Label: "Show all", Value: "all"},
		{Label: "No data found", Value: "none"},
	}, opts)

	// User experience has no retention or technology columns at all.
	st = state(func(s *api.FilterState) { s.Purpose = "User experience" })
	assert.True(t, ix.Options(api.FacetRetention, st).IsNoData())
	assert.True(t, ix.Options(api.FacetStorageTechnology, st).IsNoData())

	// A stale selection resolves to the sentinel instead of failing.
	st = state(func(s *api.FilterState) { s.Purpose = "Retired purpose" })
	assert.True(t, ix.Options(api.FacetRetention, st).IsNoData())
	assert.True(t, ix.Options(api.FacetStorageType, st).IsNoData())
}

func TestOptions_EveryOfferedValueSelectsRows(t *testing.T) {
	ix := catalogueIndex(t)

	// Walk every reachable combination of two facet selections and check
	// that each offered value, once chosen, leaves at least one row.
	base := []api.FilterState{api.DefaultFilterState()}
	for _, f := range api.Facets {
		for _, v := range ix.Options(f, api.DefaultFilterState()).Values() {
			base = append(base, api.DefaultFilterState().With(f, v))
		}
	}
	for _, st := range base {
		if ix.Filter(st).Empty() {
			continue
		}
		for _, f := range api.Facets {
			for _, v := range ix.Options(f, st).Values() {
				sel := ix.Filter(st.With(f, v))
				assert.False(t, sel.Empty(), "state %+v: %s=%q offered but selects nothing", st, f, v)
			}
		}
	}
}

func TestAllOptions(t *testing.T) {
	ix := catalogueIndex(t)
	all := ix.AllOptions(api.DefaultFilterState())
	assert.Len(t, all, len(api.Facets))
	for f, set := range all {
		assert.Equal(t, api.ShowAll, set[0], "facet %s", f)
	}
}
