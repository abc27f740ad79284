package feedstock

import (
	"errors"
	"testing"

	"github.com/ecotools/biodigest/core/model"
)

func TestDefaultLookups(t *testing.T) {
	table := Default()

	fw, err := table.Substrate(FoodWaste)
	if err != nil {
		t.Fatal(err)
	}
	if fw.PH != 4.9 || fw.TSPercent != 27.4 {
		t.Fatalf("unexpected FW properties: %+v", fw)
	}

	r, err := table.Ratio("Ratio-6_2")
	if err != nil {
		t.Fatal(err)
	}
	if r.Kinetics.G0 != 326.53 || r.Kinetics.KMax != 26.96 || r.Kinetics.Lambda != 0.43 {
		t.Fatalf("unexpected kinetics: %+v", r.Kinetics)
	}
	if r.FWPercent() != 75 {
		t.Fatalf("FW share %g, want 75", r.FWPercent())
	}
}

func TestLookupNotFound(t *testing.T) {
	table := Default()
	if _, err := table.Substrate("PS"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := table.Ratio("Ratio-9_9"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRatioIDsOrder(t *testing.T) {
	table := Default()
	want := []string{"Ratio-8_0", "Ratio-7_1", "Ratio-6_2", "Ratio-4_4", "Ratio-2_6", "Ratio-1_7"}
	got := table.RatioIDs()
	if len(got) != len(want) {
		t.Fatalf("expected %d ratios, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: %s != %s", i, got[i], want[i])
		}
	}
	// The returned slice is a copy; mutating it must not corrupt the table.
	got[0] = "mutated"
	if table.RatioIDs()[0] != want[0] {
		t.Fatal("RatioIDs leaks internal state")
	}
}

func TestNewRejectsBadEntries(t *testing.T) {
	fw := model.Substrate{ID: "FW", PH: 4.9, TSPercent: 27.4, VSPercent: 91.2, CN: 20.79}
	ok := model.Ratio{ID: "r", FWParts: 1, CMParts: 1, Kinetics: model.KineticParams{G0: 10, KMax: 1}}

	if _, err := New([]model.Substrate{fw, fw}, nil); !errors.Is(err, model.ErrInvalidParameter) {
		t.Fatalf("duplicate substrate: got %v", err)
	}
	if _, err := New(nil, []model.Ratio{ok, ok}); !errors.Is(err, model.ErrInvalidParameter) {
		t.Fatalf("duplicate ratio: got %v", err)
	}

	bad := ok
	bad.Kinetics.G0 = 0
	if _, err := New(nil, []model.Ratio{bad}); !errors.Is(err, model.ErrInvalidParameter) {
		t.Fatalf("zero G0: got %v", err)
	}
}
