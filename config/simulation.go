package config

import "fmt"

// SimulationConfig defines the default time grid and the target total
// solids of the blended feed.
type SimulationConfig struct {
	// TMaxDays is the simulated digestion time in days.
	TMaxDays float64 `json:"t_max_days"`
	// NPoints is the number of samples on the time grid.
	NPoints int `json:"n_points"`
	// TSTargetPercent is the total-solids level the feed is diluted to.
	TSTargetPercent float64 `json:"ts_target_percent"`
}

// SetDefaults applies the reference batch-protocol values.
func (c *SimulationConfig) SetDefaults() {
	if c.TMaxDays == 0 {
		c.TMaxDays = 25
	}
	if c.NPoints == 0 {
		c.NPoints = 200
	}
	if c.TSTargetPercent == 0 {
		c.TSTargetPercent = 8.0
	}
}

// Validate checks mandatory fields.
func (c SimulationConfig) Validate() error {
	if c.TMaxDays <= 0 {
		return fmt.Errorf("t_max_days must be positive, got %g", c.TMaxDays)
	}
	if c.NPoints < 2 {
		return fmt.Errorf("n_points must be at least 2, got %d", c.NPoints)
	}
	if c.TSTargetPercent <= 0 || c.TSTargetPercent > 100 {
		return fmt.Errorf("ts_target_percent must be in (0, 100], got %g", c.TSTargetPercent)
	}
	return nil
}
