// Package export serialises simulation results for downstream tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/ecotools/biodigest/core/model"
)

// WriteSeriesJSON writes the sampled yield curve to w in JSON format.
func WriteSeriesJSON(w io.Writer, ts model.TimeSeries) error {
	enc := json.NewEncoder(w)
	return enc.Encode(ts)
}

// WriteSeriesCSV writes the sampled yield curve to w as CSV with a
// header row.
func WriteSeriesCSV(w io.Writer, ts model.TimeSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "biogas_ml_per_g_vs"}); err != nil {
		return err
	}
	for i := range ts.Days {
		rec := []string{
			strconv.FormatFloat(ts.Days[i], 'f', -1, 64),
			strconv.FormatFloat(ts.Yield[i], 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMixtureJSON writes the blended feed composition to w in JSON
// format.
func WriteMixtureJSON(w io.Writer, m model.MixtureResult) error {
	enc := json.NewEncoder(w)
	return enc.Encode(m)
}

// WriteMixtureCSV writes the blended feed composition to w as a
// two-row CSV (header plus values).
func WriteMixtureCSV(w io.Writer, m model.MixtureResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ratio", "fw_percent", "cm_percent", "ph", "cn", "ts_percent", "vs_percent", "scod_g_l", "tcod_g_l"}); err != nil {
		return err
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	rec := []string{m.RatioLabel, f(m.FWPercent), f(m.CMPercent), f(m.PH), f(m.CN), f(m.TSPercent), f(m.VSPercent), f(m.SCOD), f(m.TCOD)}
	if err := cw.Write(rec); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
