package model

import "fmt"

// Substrate holds the tabulated physicochemical properties of a single
// feedstock, as characterised before digestion.
type Substrate struct {
	ID        string
	PH        float64 // pH of the raw substrate
	TSPercent float64 // total solids, % of fresh mass
	VSPercent float64 // volatile solids, % of total solids
	CN        float64 // carbon to nitrogen mass ratio
	SCOD      float64 // soluble chemical oxygen demand, g/L
	TCOD      float64 // total chemical oxygen demand, g/L
}

// Validate checks that the tabulated values are physically plausible.
func (s Substrate) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("substrate id is required: %w", ErrInvalidParameter)
	}
	if s.PH < 0 || s.PH > 14 {
		return fmt.Errorf("substrate %s: pH %.2f out of range: %w", s.ID, s.PH, ErrInvalidParameter)
	}
	if s.TSPercent < 0 || s.TSPercent > 100 {
		return fmt.Errorf("substrate %s: TS %.2f%% out of range: %w", s.ID, s.TSPercent, ErrInvalidParameter)
	}
	if s.VSPercent < 0 || s.VSPercent > 100 {
		return fmt.Errorf("substrate %s: VS %.2f%% out of range: %w", s.ID, s.VSPercent, ErrInvalidParameter)
	}
	if s.CN <= 0 {
		return fmt.Errorf("substrate %s: C/N must be positive: %w", s.ID, ErrInvalidParameter)
	}
	return nil
}
