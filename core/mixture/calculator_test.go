package mixture

import (
	"errors"
	"math"
	"testing"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/core/model"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestPropertiesReferenceBlend(t *testing.T) {
	calc := NewCalculator(feedstock.Default())
	res, err := calc.Properties(6, 2, 8.0)
	if err != nil {
		t.Fatal(err)
	}
	// 6:2 weights FW 0.75 / CM 0.25 over the published table values.
	if !almostEqual(res.PH, 5.525, 0.05) {
		t.Fatalf("pH %g, want 5.525", res.PH)
	}
	if !almostEqual(res.CN, 0.75*20.79+0.25*8.22, 1e-9) {
		t.Fatalf("C/N %g unexpected", res.CN)
	}
	if !almostEqual(res.VSPercent, 0.75*91.20+0.25*83.07, 1e-9) {
		t.Fatalf("VS%% %g unexpected", res.VSPercent)
	}
	if res.TSPercent != 8.0 {
		t.Fatalf("TS%% must echo the target, got %g", res.TSPercent)
	}
	if res.FWPercent != 75 || res.CMPercent != 25 {
		t.Fatalf("shares %g/%g, want 75/25", res.FWPercent, res.CMPercent)
	}
}

func TestPropertiesPureSubstrates(t *testing.T) {
	table := feedstock.Default()
	calc := NewCalculator(table)

	fw, err := table.Substrate(feedstock.FoodWaste)
	if err != nil {
		t.Fatal(err)
	}
	cm, err := table.Substrate(feedstock.CowManure)
	if err != nil {
		t.Fatal(err)
	}

	for _, ts := range []float64{2, 8, 100} {
		res, err := calc.Properties(1, 0, ts)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(res.PH, fw.PH, 1e-12) || !almostEqual(res.CN, fw.CN, 1e-12) || !almostEqual(res.VSPercent, fw.VSPercent, 1e-12) {
			t.Fatalf("pure FW at ts=%g does not match substrate: %+v", ts, res)
		}

		res, err = calc.Properties(0, 1, ts)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(res.PH, cm.PH, 1e-12) || !almostEqual(res.CN, cm.CN, 1e-12) || !almostEqual(res.VSPercent, cm.VSPercent, 1e-12) {
			t.Fatalf("pure CM at ts=%g does not match substrate: %+v", ts, res)
		}
	}
}

func TestPropertiesIndependentOfTSTarget(t *testing.T) {
	// pH and C/N are composition ratios; diluting to a different TS must
	// not move them.
	calc := NewCalculator(feedstock.Default())
	a, err := calc.Properties(6, 2, 4.0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := calc.Properties(6, 2, 12.0)
	if err != nil {
		t.Fatal(err)
	}
	if a.PH != b.PH || a.CN != b.CN || a.VSPercent != b.VSPercent {
		t.Fatalf("composition moved with ts_target: %+v vs %+v", a, b)
	}
}

func TestPropertiesInvalidInputs(t *testing.T) {
	calc := NewCalculator(feedstock.Default())
	cases := []struct {
		name       string
		fw, cm, ts float64
	}{
		{"negative fw", -1, 2, 8},
		{"negative cm", 6, -2, 8},
		{"zero pair", 0, 0, 8},
		{"zero ts", 6, 2, 0},
		{"negative ts", 6, 2, -8},
		{"ts above 100", 6, 2, 101},
	}
	for _, c := range cases {
		if _, err := calc.Properties(c.fw, c.cm, c.ts); !errors.Is(err, model.ErrInvalidParameter) {
			t.Fatalf("%s: expected ErrInvalidParameter, got %v", c.name, err)
		}
	}
}
