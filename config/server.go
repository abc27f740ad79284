package config

import "fmt"

// ServerConfig defines settings for the HTTP simulation service.
type ServerConfig struct {
	// Address the server listens on, e.g. ":8080".
	Address string `json:"address"`
	// MetricsDisabled turns off the Prometheus /metrics endpoint.
	MetricsDisabled bool `json:"metrics_disabled"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
}

// Validate checks mandatory fields.
func (c ServerConfig) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("server address is required")
	}
	return nil
}
