package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/core/gompertz"
	"github.com/ecotools/biodigest/infra/logger"
	"github.com/ecotools/biodigest/infra/plot"
)

var (
	plotAll    bool
	plotOutDir string
)

var plotCmd = &cobra.Command{
	Use:   "plot [ratio]",
	Short: "Render biogas yield curves to PNG",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlot,
}

func init() {
	plotCmd.Flags().BoolVar(&plotAll, "all", false, "plot every ratio on one canvas")
	plotCmd.Flags().StringVar(&plotOutDir, "out-dir", "", "output directory (default from config)")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	outDir := cfg.Output.Dir
	if plotOutDir != "" {
		outDir = plotOutDir
	}

	log := logger.New("plot")
	table := feedstock.Default()
	sim := gompertz.NewSimulator(table)

	if plotAll {
		out := filepath.Join(outDir, "all_ratios.png")
		if err := plot.Comparison(sim, table, cfg.Simulation.TMaxDays, cfg.Simulation.NPoints, out); err != nil {
			return err
		}
		log.Infof("wrote %s", out)
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("a ratio id is required unless --all is given")
	}
	ratioID := args[0]
	ts, err := sim.Simulate(ratioID, cfg.Simulation.TMaxDays, cfg.Simulation.NPoints)
	if err != nil {
		return err
	}
	out := filepath.Join(outDir, fmt.Sprintf("biogas_%s.png", ratioID))
	if err := plot.Curve(ts, ratioID, out); err != nil {
		return err
	}
	log.Infof("wrote %s", out)
	return nil
}
