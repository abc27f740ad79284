package gompertz

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/core/model"
)

// Simulator samples Gompertz yield curves over a time grid. It only
// reads the immutable ratio table, so one instance can serve any number
// of concurrent callers.
type Simulator struct {
	table *feedstock.Table
}

// NewSimulator returns a Simulator resolving named ratios against table.
func NewSimulator(table *feedstock.Table) *Simulator {
	return &Simulator{table: table}
}

// Simulate resolves ratioID against the table and samples its curve on
// nPoints evenly spaced days from 0 to tMax inclusive.
func (s *Simulator) Simulate(ratioID string, tMax float64, nPoints int) (model.TimeSeries, error) {
	r, err := s.table.Ratio(ratioID)
	if err != nil {
		return model.TimeSeries{}, err
	}
	return s.SimulateParams(r.Kinetics, tMax, nPoints)
}

// SimulateParams samples the curve for explicitly supplied kinetic
// constants, bypassing the ratio table.
func (s *Simulator) SimulateParams(p model.KineticParams, tMax float64, nPoints int) (model.TimeSeries, error) {
	if err := p.Validate(); err != nil {
		return model.TimeSeries{}, err
	}
	if tMax <= 0 {
		return model.TimeSeries{}, fmt.Errorf("t_max must be positive, got %g: %w", tMax, model.ErrInvalidParameter)
	}
	if nPoints < 2 {
		return model.TimeSeries{}, fmt.Errorf("need at least 2 grid points, got %d: %w", nPoints, model.ErrInvalidParameter)
	}

	days := floats.Span(make([]float64, nPoints), 0, tMax)
	// Span steps by l+i*step and can land short of the upper bound when
	// tMax/(nPoints-1) is inexact; the grid must end exactly at tMax.
	days[nPoints-1] = tMax
	yield := make([]float64, nPoints)
	for i, t := range days {
		yield[i] = Yield(t, p.G0, p.KMax, p.Lambda)
	}
	return model.TimeSeries{Days: days, Yield: yield}, nil
}
