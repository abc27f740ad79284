package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/pkg/report"
)

var ratiosCmd = &cobra.Command{
	Use:   "ratios",
	Short: "List the named FW:CM ratios and their kinetic constants",
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.Catalog(cmd.OutOrStdout(), feedstock.Default())
	},
}

func init() {
	rootCmd.AddCommand(ratiosCmd)
}
