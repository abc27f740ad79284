package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/core/gompertz"
	"github.com/ecotools/biodigest/pkg/export"
)

var (
	simTMax   float64
	simPoints int
	simFormat string
	simOut    string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <ratio>",
	Short: "Sample the biogas yield curve for a named FW:CM ratio",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&simTMax, "t-max", 0, "simulated time in days (default from config)")
	simulateCmd.Flags().IntVar(&simPoints, "points", 0, "number of grid points (default from config)")
	simulateCmd.Flags().StringVar(&simFormat, "format", "csv", "output format: csv or json")
	simulateCmd.Flags().StringVarP(&simOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	tMax := cfg.Simulation.TMaxDays
	if cmd.Flags().Changed("t-max") {
		tMax = simTMax
	}
	nPoints := cfg.Simulation.NPoints
	if cmd.Flags().Changed("points") {
		nPoints = simPoints
	}

	sim := gompertz.NewSimulator(feedstock.Default())
	ts, err := sim.Simulate(args[0], tMax, nPoints)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if simOut != "" {
		f, err := os.Create(simOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	switch simFormat {
	case "csv":
		return export.WriteSeriesCSV(w, ts)
	case "json":
		return export.WriteSeriesJSON(w, ts)
	default:
		return fmt.Errorf("unsupported format: %s", simFormat)
	}
}
