package model

// MixtureResult holds the blended composition of a two-substrate feed.
// It is a pure value derived from the substrate table, a proportion pair
// and a target total-solids level; it is never persisted.
type MixtureResult struct {
	RatioLabel string  `json:"ratio"`      // e.g. "6:2"
	FWPercent  float64 `json:"fw_percent"` // food waste share of the mix
	CMPercent  float64 `json:"cm_percent"` // cow manure share of the mix
	PH         float64 `json:"ph"`
	CN         float64 `json:"cn"`
	TSPercent  float64 `json:"ts_percent"` // echo of the requested target TS
	VSPercent  float64 `json:"vs_percent"` // % of total solids
	SCOD       float64 `json:"scod_g_l"`
	TCOD       float64 `json:"tcod_g_l"`
}
