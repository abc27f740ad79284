// Package plot renders biogas yield curves to PNG files with
// gonum.org/v1/plot.
package plot

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ecotools/biodigest/core/feedstock"
	"github.com/ecotools/biodigest/core/gompertz"
	"github.com/ecotools/biodigest/core/model"
)

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (days)"
	p.Y.Label.Text = "cumulative biogas (mL/g VS)"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	return p
}

func seriesLine(ts model.TimeSeries) (*plotter.Line, error) {
	pts := make(plotter.XYs, ts.Len())
	for i := range ts.Days {
		pts[i].X = ts.Days[i]
		pts[i].Y = ts.Yield[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	return line, nil
}

func savePNG(p *plot.Plot, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}
	c := vgimg.NewWith(
		vgimg.UseWH(8*vg.Inch, 6*vg.Inch),
		vgimg.UseDPI(150),
	)
	dc := draw.New(c)
	p.Draw(dc)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}

// Curve renders a single yield curve, annotated with its final yield,
// and saves it to filename.
func Curve(ts model.TimeSeries, ratioID, filename string) error {
	if ts.Len() == 0 {
		return fmt.Errorf("empty series: %w", model.ErrInvalidParameter)
	}
	p := newPlot(fmt.Sprintf("Anaerobic co-digestion: %s", ratioID))
	line, err := seriesLine(ts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("final yield %.1f mL/g VS", ts.FinalYield()), line)
	p.Legend.Top = false
	return savePNG(p, filename)
}

// Comparison renders every ratio in the table on one canvas and saves
// it to filename. The grid is taken from the simulator defaults of the
// caller.
func Comparison(sim *gompertz.Simulator, table *feedstock.Table, tMax float64, nPoints int, filename string) error {
	p := newPlot("Anaerobic co-digestion: all FW:CM ratios")
	for i, id := range table.RatioIDs() {
		r, err := table.Ratio(id)
		if err != nil {
			return err
		}
		ts, err := sim.Simulate(id, tMax, nPoints)
		if err != nil {
			return err
		}
		line, err := seriesLine(ts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s: FW %.0f%%", id, r.FWPercent()), line)
	}
	p.Legend.Top = false
	return savePNG(p, filename)
}
