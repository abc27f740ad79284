package feedstock

import "github.com/ecotools/biodigest/core/model"

// Substrate identifiers of the published dataset.
const (
	FoodWaste = "FW"
	CowManure = "CM"
)

// Default returns the table published by Mohammadianroshanfekr et al.
// (2024) for food waste / cow manure co-digestion: substrate
// characterisation from their Table 1 and fitted Gompertz constants for
// the six batch-tested FW:CM ratios from their Table 6.
func Default() *Table {
	substrates := []model.Substrate{
		{ID: FoodWaste, PH: 4.9, TSPercent: 27.4, VSPercent: 91.20, CN: 20.79, SCOD: 74.1, TCOD: 205.8},
		{ID: CowManure, PH: 7.4, TSPercent: 19.2, VSPercent: 83.07, CN: 8.22, SCOD: 13.5, TCOD: 51.2},
	}
	ratios := []model.Ratio{
		{ID: "Ratio-8_0", FWParts: 8, CMParts: 0, Description: "food waste only",
			Kinetics: model.KineticParams{G0: 139.75, KMax: 9.96, Lambda: 0.77}},
		{ID: "Ratio-7_1", FWParts: 7, CMParts: 1, Description: "FW 87.5% + CM 12.5%",
			Kinetics: model.KineticParams{G0: 226.85, KMax: 19.33, Lambda: 0.20}},
		{ID: "Ratio-6_2", FWParts: 6, CMParts: 2, Description: "optimum: FW 75% + CM 25%",
			Kinetics: model.KineticParams{G0: 326.53, KMax: 26.96, Lambda: 0.43}},
		{ID: "Ratio-4_4", FWParts: 4, CMParts: 4, Description: "balanced: FW 50% + CM 50%",
			Kinetics: model.KineticParams{G0: 279.38, KMax: 20.98, Lambda: 0}},
		{ID: "Ratio-2_6", FWParts: 2, CMParts: 6, Description: "FW 25% + CM 75%",
			Kinetics: model.KineticParams{G0: 240.81, KMax: 16.74, Lambda: 0}},
		{ID: "Ratio-1_7", FWParts: 1, CMParts: 7, Description: "FW 12.5% + CM 87.5%",
			Kinetics: model.KineticParams{G0: 213.48, KMax: 12.82, Lambda: 0}},
	}
	t, err := New(substrates, ratios)
	if err != nil {
		// The built-in dataset is validated by tests; a failure here is
		// a programming error, not a runtime condition.
		panic(err)
	}
	return t
}
