package model

import "fmt"

// KineticParams are the fitted constants of the modified Gompertz model
// for one feed mixture. They come from batch-test regression, not from
// anything this package computes.
type KineticParams struct {
	G0     float64 // asymptotic cumulative biogas yield, mL/g VS
	KMax   float64 // maximum production rate, mL/g VS/day
	Lambda float64 // lag phase duration, days
}

// Validate checks the fitted constants. KMax is deliberately left
// unconstrained: zero is a defined degenerate case and negative values
// are accepted as-is (see DESIGN.md).
func (p KineticParams) Validate() error {
	if p.G0 <= 0 {
		return fmt.Errorf("G0 must be positive, got %g: %w", p.G0, ErrInvalidParameter)
	}
	if p.Lambda < 0 {
		return fmt.Errorf("lambda must be non-negative, got %g: %w", p.Lambda, ErrInvalidParameter)
	}
	return nil
}

// Ratio describes one named FW:CM mixing ratio together with its fitted
// kinetic constants.
type Ratio struct {
	ID          string
	FWParts     float64 // parts of food waste by mass
	CMParts     float64 // parts of cow manure by mass
	Description string
	Kinetics    KineticParams
}

// FWPercent returns the food-waste share of the mix in percent.
func (r Ratio) FWPercent() float64 {
	return 100 * r.FWParts / (r.FWParts + r.CMParts)
}

// CMPercent returns the cow-manure share of the mix in percent.
func (r Ratio) CMPercent() float64 {
	return 100 * r.CMParts / (r.FWParts + r.CMParts)
}

// Validate checks the proportion pair and the kinetic constants.
func (r Ratio) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("ratio id is required: %w", ErrInvalidParameter)
	}
	if r.FWParts < 0 || r.CMParts < 0 {
		return fmt.Errorf("ratio %s: proportion parts must be non-negative: %w", r.ID, ErrInvalidParameter)
	}
	if r.FWParts+r.CMParts <= 0 {
		return fmt.Errorf("ratio %s: proportion parts must not both be zero: %w", r.ID, ErrInvalidParameter)
	}
	if err := r.Kinetics.Validate(); err != nil {
		return fmt.Errorf("ratio %s: %w", r.ID, err)
	}
	return nil
}
