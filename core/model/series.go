package model

// TimeSeries is the sampled cumulative biogas yield curve produced by a
// simulation. Days is strictly increasing from 0; Yield holds the value
// of G(t) at each day, in mL/g VS.
type TimeSeries struct {
	Days  []float64 `json:"days"`
	Yield []float64 `json:"yield_ml_per_g_vs"`
}

// Len returns the number of sampled points.
func (ts TimeSeries) Len() int { return len(ts.Days) }

// FinalYield returns the last sampled yield, or 0 for an empty series.
func (ts TimeSeries) FinalYield() float64 {
	if len(ts.Yield) == 0 {
		return 0
	}
	return ts.Yield[len(ts.Yield)-1]
}
