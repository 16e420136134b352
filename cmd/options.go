package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/radar/api"
)

var typed string

var optionsCmd = &cobra.Command{
	Use:   "options [facet...]",
	Short: "List selectable values for each facet under the current filters",
	Long: `List selectable values for each facet under the current filters.

Facets: search, purpose, retention, storage_technology, storage_type.
With --typed, search suggestions are narrowed by the typed text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutput(); err != nil {
			return err
		}
		facets, err := parseFacets(args)
		if err != nil {
			return err
		}
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}

		st := filter.Normalize()
		out := make(map[api.Facet]api.OptionSet, len(facets))
		for _, f := range facets {
			if f == api.FacetSearch && cmd.Flags().Changed("typed") {
				out[f] = e.SearchOptions(st, typed)
				continue
			}
			out[f] = e.Index().Options(f, st)
		}

		if outputFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), out)
		}
		for _, f := range facets {
			writeOptions(cmd.OutOrStdout(), f, out[f])
		}
		return nil
	},
}

func init() {
	addStateFlags(optionsCmd)
	addOutputFlag(optionsCmd)
	optionsCmd.Flags().StringVar(&typed, "typed", "", "In-progress search text")
	rootCmd.AddCommand(optionsCmd)
}

func parseFacets(args []string) ([]api.Facet, error) {
	if len(args) == 0 {
		return api.Facets, nil
	}
	facets := make([]api.Facet, 0, len(args))
	for _, a := range args {
		f := api.Facet(a)
		known := false
		for _, k := range api.Facets {
			if k == f {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown facet %q", a)
		}
		facets = append(facets, f)
	}
	return facets, nil
}
