package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentic-research/radar/api"
)

var (
	filter       = api.DefaultFilterState()
	outputFormat string
)

// addStateFlags registers the filter selections on c.
func addStateFlags(c *cobra.Command) {
	c.Flags().StringVar(&filter.Search, "search", "", "Exact domain or level value to keep")
	c.Flags().StringVar(&filter.Purpose, "purpose", api.All, "Purpose to keep")
	c.Flags().StringVar(&filter.Retention, "retention", api.All, "Retention value to keep")
	c.Flags().StringVar(&filter.StorageTechnology, "storage-technology", api.All, "Storage technology to keep")
	c.Flags().StringVar(&filter.StorageType, "storage-type", api.All, "Storage type to keep (ephemeral, persisted)")
	c.Flags().IntVar(&filter.Depth, "depth", api.MaxDepth, "Hierarchy depth (2-8)")
	c.Flags().StringVar(&filter.View, "view", "", "Colour palette")
}

func addOutputFlag(c *cobra.Command) {
	c.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json)")
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func checkOutput() error {
	switch outputFormat {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text or json)", outputFormat)
}
