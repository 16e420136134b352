package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentic-research/radar/api"
)

var showDetails bool

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the filtered hierarchy",
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
			if res.Empty {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"placeholder": res.Placeholder})
			}
			return writeJSON(cmd.OutOrStdout(), res.Hierarchy)
		}
		if res.Empty {
			fmt.Fprintln(cmd.OutOrStdout(), res.Placeholder)
			return nil
		}
		root, _ := res.Hierarchy.Root()
		writeNode(cmd.OutOrStdout(), res.Hierarchy, root)
		return nil
	},
}

func init() {
	addStateFlags(treeCmd)
	addOutputFlag(treeCmd)
	treeCmd.Flags().BoolVar(&showDetails, "details", false, "Show per-purpose retention and storage for each node")
	rootCmd.AddCommand(treeCmd)
}

func writeNode(w io.Writer, h *api.Hierarchy, n api.Node) {
	indent := strings.Repeat("  ", n.Depth()-1)
	line := fmt.Sprintf("%s%s (%d)", indent, n.Label, n.Count)
	if n.Color != "" {
		line += " " + n.Color
	}
	fmt.Fprintln(w, line)
	if showDetails {
		for _, l := range n.Metadata.HoverLines() {
			fmt.Fprintf(w, "%s  | %s\n", indent, l)
		}
	}
	for _, c := range h.Children(n.ID) {
		writeNode(w, h, c)
	}
}
