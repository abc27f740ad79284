package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/core/mixture"
	"github.com/ecotools/biodigest/pkg/export"
	"github.com/ecotools/biodigest/pkg/report"
)

var (
	mixFW     float64
	mixCM     float64
	mixTS     float64
	mixFormat string
)

var mixtureCmd = &cobra.Command{
	Use:   "mixture",
	Short: "Compute blended feed composition for a FW:CM proportion pair",
	RunE:  runMixture,
}

func init() {
	mixtureCmd.Flags().Float64Var(&mixFW, "fw", 6, "parts of food waste")
	mixtureCmd.Flags().Float64Var(&mixCM, "cm", 2, "parts of cow manure")
	mixtureCmd.Flags().Float64Var(&mixTS, "ts", 0, "target total solids percent (default from config)")
	mixtureCmd.Flags().StringVar(&mixFormat, "format", "text", "output format: text, csv or json")
	rootCmd.AddCommand(mixtureCmd)
}

func runMixture(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	tsTarget := cfg.Simulation.TSTargetPercent
	if cmd.Flags().Changed("ts") {
		tsTarget = mixTS
	}

	calc := mixture.NewCalculator(feedstock.Default())
	res, err := calc.Properties(mixFW, mixCM, tsTarget)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch mixFormat {
	case "text":
		return report.Mixture(w, res)
	case "csv":
		return export.WriteMixtureCSV(w, res)
	case "json":
		return export.WriteMixtureJSON(w, res)
	default:
		return fmt.Errorf("unsupported format: %s", mixFormat)
	}
}
