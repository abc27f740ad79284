// Package mixture blends the tabulated properties of two substrates
// into the composition of a co-digestion feed.
package mixture

import (
	"fmt"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/core/model"
)

// Calculator derives blended feed composition from the substrate table.
type Calculator struct {
	table *feedstock.Table
}

// NewCalculator returns a Calculator reading the given table.
func NewCalculator(table *feedstock.Table) *Calculator {
	return &Calculator{table: table}
}

// Properties computes the blended composition of fwParts food waste to
// cmParts cow manure, diluted to tsTarget percent total solids.
//
// Each scalar attribute is the mass-fraction weighted mean of the two
// substrates' tabulated values. Linear blending is the convention of
// the underlying batch protocol, not a claim of biochemical additivity.
// VS is tabulated as a fraction of TS, so diluting the blend to the
// target TS leaves VS unchanged; tsTarget only shows up as the reported
// TSPercent.
func (c *Calculator) Properties(fwParts, cmParts, tsTarget float64) (model.MixtureResult, error) {
	if fwParts < 0 || cmParts < 0 {
		return model.MixtureResult{}, fmt.Errorf("proportion parts must be non-negative, got (%g, %g): %w",
			fwParts, cmParts, model.ErrInvalidParameter)
	}
	total := fwParts + cmParts
	if total <= 0 {
		return model.MixtureResult{}, fmt.Errorf("proportion parts must not both be zero: %w", model.ErrInvalidParameter)
	}
	if tsTarget <= 0 || tsTarget > 100 {
		return model.MixtureResult{}, fmt.Errorf("target TS must be in (0, 100], got %g: %w",
			tsTarget, model.ErrInvalidParameter)
	}

	fw, err := c.table.Substrate(feedstock.FoodWaste)
	if err != nil {
		return model.MixtureResult{}, err
	}
	cm, err := c.table.Substrate(feedstock.CowManure)
	if err != nil {
		return model.MixtureResult{}, err
	}

	fFW := fwParts / total
	fCM := cmParts / total
	blend := func(a, b float64) float64 { return fFW*a + fCM*b }

	return model.MixtureResult{
		RatioLabel: fmt.Sprintf("%g:%g", fwParts, cmParts),
		FWPercent:  fFW * 100,
		CMPercent:  fCM * 100,
		PH:         blend(fw.PH, cm.PH),
		CN:         blend(fw.CN, cm.CN),
		TSPercent:  tsTarget,
		VSPercent:  blend(fw.VSPercent, cm.VSPercent),
		SCOD:       blend(fw.SCOD, cm.SCOD),
		TCOD:       blend(fw.TCOD, cm.TCOD),
	}, nil
}
