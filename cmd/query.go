package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentic-research/radar/api"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Apply filters and report matching rows, options and purpose card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutput(); err != nil {
			return err
		}
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		res := e.Recompute(filter)
		if outputFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), res)
		}
		writeResult(cmd.OutOrStdout(), e.Dataset().Domain(), e.Dataset().Len(), res)
		return nil
	},
}

func init() {
	addStateFlags(queryCmd)
	addOutputFlag(queryCmd)
	rootCmd.AddCommand(queryCmd)
}

func writeResult(w io.Writer, domain string, total int, res *api.Result) {
	s := res.State
	fmt.Fprintf(w, "%s: %d of %d rows\n", domain, res.Rows, total)
	fmt.Fprintf(w, "search=%q purpose=%s retention=%s storage_technology=%s storage_type=%s depth=%d view=%s\n",
		s.Search, s.Purpose, s.Retention, s.StorageTechnology, s.StorageType, s.Depth, s.View)
	if res.Empty {
		fmt.Fprintln(w, res.Placeholder)
	}
	if res.Purpose.Visible {
		fmt.Fprintf(w, "Purpose: %s\n  %s\n", res.Purpose.Title, res.Purpose.Description)
	} else {
		fmt.Fprintln(w, res.Purpose.Description)
	}
	fmt.Fprintln(w, "Options:")
	for _, f := range api.Facets {
		writeOptions(w, f, res.Options[f])
	}
}

func writeOptions(w io.Writer, f api.Facet, opts api.OptionSet) {
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	fmt.Fprintf(w, "  %s: %s\n", f, strings.Join(labels, ", "))
}
