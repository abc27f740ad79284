package gompertz

import (
	"errors"
	"math"
	"testing"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/core/model"
)

func TestSimulateGrid(t *testing.T) {
	sim := NewSimulator(feedstock.Default())
	// Both cases have an inexact step tMax/(nPoints-1); the endpoint
	// must still land exactly on tMax.
	cases := []struct {
		tMax    float64
		nPoints int
	}{
		{25, 200},
		{10, 7},
	}
	for _, c := range cases {
		ts, err := sim.Simulate("Ratio-6_2", c.tMax, c.nPoints)
		if err != nil {
			t.Fatal(err)
		}
		if ts.Len() != c.nPoints {
			t.Fatalf("expected %d points, got %d", c.nPoints, ts.Len())
		}
		if ts.Days[0] != 0 {
			t.Fatalf("grid must start at 0, got %g", ts.Days[0])
		}
		if ts.Days[len(ts.Days)-1] != c.tMax {
			t.Fatalf("grid must end at t_max, got %g", ts.Days[len(ts.Days)-1])
		}
		for i := 1; i < len(ts.Days); i++ {
			if ts.Days[i] <= ts.Days[i-1] {
				t.Fatalf("grid not strictly increasing at %d", i)
			}
		}
	}
}

func TestSimulateMonotonicAndBounded(t *testing.T) {
	table := feedstock.Default()
	sim := NewSimulator(table)
	for _, id := range table.RatioIDs() {
		r, err := table.Ratio(id)
		if err != nil {
			t.Fatal(err)
		}
		ts, err := sim.Simulate(id, 25, 200)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		for i := range ts.Yield {
			if ts.Yield[i] < 0 || ts.Yield[i] > r.Kinetics.G0 {
				t.Fatalf("%s: yield %g escapes [0, G0] at %d", id, ts.Yield[i], i)
			}
			if i > 0 && ts.Yield[i] < ts.Yield[i-1] {
				t.Fatalf("%s: yield decreases at %d", id, i)
			}
		}
	}
}

func TestSimulateConvergesToG0(t *testing.T) {
	table := feedstock.Default()
	sim := NewSimulator(table)
	for _, id := range table.RatioIDs() {
		r, err := table.Ratio(id)
		if err != nil {
			t.Fatal(err)
		}
		ts, err := sim.Simulate(id, 80, 100)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		rel := math.Abs(ts.FinalYield()-r.Kinetics.G0) / r.Kinetics.G0
		if rel > 0.01 {
			t.Fatalf("%s: final yield %g not within 1%% of G0 %g", id, ts.FinalYield(), r.Kinetics.G0)
		}
	}
}

func TestSimulateReferenceValues(t *testing.T) {
	sim := NewSimulator(feedstock.Default())
	cases := []struct {
		ratio string
		want  float64
	}{
		{"Ratio-6_2", 323.0},
		{"Ratio-8_0", 136.3},
	}
	for _, c := range cases {
		ts, err := sim.Simulate(c.ratio, 25, 200)
		if err != nil {
			t.Fatalf("%s: %v", c.ratio, err)
		}
		got := ts.FinalYield()
		if math.Abs(got-c.want)/c.want > 0.01 {
			t.Fatalf("%s: final yield %g, want %g within 1%%", c.ratio, got, c.want)
		}
	}
}

func TestSimulateUnknownRatio(t *testing.T) {
	sim := NewSimulator(feedstock.Default())
	_, err := sim.Simulate("Ratio-9_9", 25, 200)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSimulateInvalidGrid(t *testing.T) {
	sim := NewSimulator(feedstock.Default())
	if _, err := sim.Simulate("Ratio-6_2", 25, 1); !errors.Is(err, model.ErrInvalidParameter) {
		t.Fatalf("n_points=1: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := sim.Simulate("Ratio-6_2", 0, 200); !errors.Is(err, model.ErrInvalidParameter) {
		t.Fatalf("t_max=0: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := sim.Simulate("Ratio-6_2", -3, 200); !errors.Is(err, model.ErrInvalidParameter) {
		t.Fatalf("t_max<0: expected ErrInvalidParameter, got %v", err)
	}
}

func TestSimulateParamsRejectsBadG0(t *testing.T) {
	sim := NewSimulator(feedstock.Default())
	for _, g0 := range []float64{0, -10} {
		p := model.KineticParams{G0: g0, KMax: 5, Lambda: 1}
		if _, err := sim.SimulateParams(p, 25, 50); !errors.Is(err, model.ErrInvalidParameter) {
			t.Fatalf("G0=%g: expected ErrInvalidParameter, got %v", g0, err)
		}
	}
}

func TestZeroRateDegenerateCase(t *testing.T) {
	sim := NewSimulator(feedstock.Default())
	p := model.KineticParams{G0: 100, KMax: 0, Lambda: 5}
	ts, err := sim.SimulateParams(p, 25, 50)
	if err != nil {
		t.Fatal(err)
	}
	want := 100 * math.Exp(-math.E)
	for i, g := range ts.Yield {
		if math.Abs(g-want) > 1e-9 {
			t.Fatalf("expected constant %g, got %g at %d", want, g, i)
		}
	}
}

func TestNegativeRateAccepted(t *testing.T) {
	// Negative k_max is not rejected; the curve decreases over time.
	sim := NewSimulator(feedstock.Default())
	p := model.KineticParams{G0: 100, KMax: -5, Lambda: 0}
	ts, err := sim.SimulateParams(p, 25, 50)
	if err != nil {
		t.Fatal(err)
	}
	if ts.Yield[0] <= ts.FinalYield() {
		t.Fatalf("expected decreasing curve, got %g .. %g", ts.Yield[0], ts.FinalYield())
	}
}

func TestYieldExtremeInputsStayFinite(t *testing.T) {
	// A long lag with a huge rate drives the inner exponent far positive;
	// a huge t drives it far negative. Neither may produce NaN or Inf.
	cases := []struct{ t, g0, kMax, lambda float64 }{
		{0, 1e-3, 1e6, 1e4},
		{1e6, 300, 30, 0},
		{0, 300, 30, 1e5},
	}
	for _, c := range cases {
		g := Yield(c.t, c.g0, c.kMax, c.lambda)
		if math.IsNaN(g) || math.IsInf(g, 0) {
			t.Fatalf("Yield(%g,%g,%g,%g) = %g", c.t, c.g0, c.kMax, c.lambda, g)
		}
		if g < 0 || g > c.g0 {
			t.Fatalf("Yield(%g,%g,%g,%g) = %g escapes [0, G0]", c.t, c.g0, c.kMax, c.lambda, g)
		}
	}
}

func TestYieldSaturatesForLargeT(t *testing.T) {
	g := Yield(1e4, 326.53, 26.96, 0.43)
	if math.Abs(g-326.53) > 1e-9 {
		t.Fatalf("expected saturation at G0, got %g", g)
	}
}
