package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List configured domains; * marks the selected one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, fs, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		for _, d := range cfg.Domains {
			mark := " "
			if d.Name == cfg.SelectedDomain {
				mark = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", mark, d.Name, fs.Join(cfg.DataDir, d.File))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}
