// Package cmd wires the biodigest command line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ecotools/biodigest/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "biodigest",
	Short: "Anaerobic co-digestion biogas model (modified Gompertz)",
	Long: `biodigest models biogas yield from food waste and cow manure
co-digestion with the modified Gompertz equation, using kinetic
constants fitted for six FW:CM mixing ratios.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// loadConfig reads the configured file, or returns built-in defaults
// when no --config flag is given.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
