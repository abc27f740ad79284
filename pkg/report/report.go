// Package report renders human-readable summaries of the kinetic
// tables and simulation results.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/core/model"
)

const rule = 62

// RatioInfo writes a detailed block describing one mixing ratio and its
// fitted kinetic constants.
func RatioInfo(w io.Writer, r model.Ratio) error {
	var b strings.Builder
	line := strings.Repeat("=", rule)
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "Ratio:       %s (%s)\n", r.ID, r.Description)
	fmt.Fprintf(&b, "Food waste:  %.1f%%\n", r.FWPercent())
	fmt.Fprintf(&b, "Cow manure:  %.1f%%\n", r.CMPercent())
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", rule))
	fmt.Fprintf(&b, "Final biogas yield (G0):    %7.2f mL/g VS\n", r.Kinetics.G0)
	fmt.Fprintf(&b, "Max production rate (kmax): %7.2f mL/g VS/day\n", r.Kinetics.KMax)
	fmt.Fprintf(&b, "Lag phase (lambda):         %7.2f days\n", r.Kinetics.Lambda)
	fmt.Fprintf(&b, "%s\n", line)
	_, err := io.WriteString(w, b.String())
	return err
}

// Catalog writes one line per ratio in table order, with the food waste
// share and fitted final yield.
func Catalog(w io.Writer, table *feedstock.Table) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Available FW:CM ratios:\n%s\n", strings.Repeat("-", rule))
	for _, id := range table.RatioIDs() {
		r, err := table.Ratio(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "  %-12s | FW %5.1f%% | G0 %7.2f mL/g VS | %s\n",
			r.ID, r.FWPercent(), r.Kinetics.G0, r.Description)
	}
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", rule))
	_, err := io.WriteString(w, b.String())
	return err
}

// Mixture writes the blended feed composition in the layout used by the
// demo sequence.
func Mixture(w io.Writer, m model.MixtureResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Mixture %s (FW %.1f%% / CM %.1f%%)\n", m.RatioLabel, m.FWPercent, m.CMPercent)
	fmt.Fprintf(&b, "  pH:   %5.2f\n", m.PH)
	fmt.Fprintf(&b, "  C/N:  %5.2f\n", m.CN)
	fmt.Fprintf(&b, "  TS:   %5.2f %%\n", m.TSPercent)
	fmt.Fprintf(&b, "  VS:   %5.2f %% of TS\n", m.VSPercent)
	_, err := io.WriteString(w, b.String())
	return err
}
