package config

// OutputConfig locates generated artifacts (plots, exports).
type OutputConfig struct {
	// Dir is the directory plot and export files are written to.
	Dir string `json:"dir"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "data/output"
	}
}
