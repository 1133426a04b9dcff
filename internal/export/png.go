package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/oszi-tools/osziremote/internal/hist"
	"github.com/oszi-tools/osziremote/internal/viewer"
)

// WritePNG renders the acquisition figure to path: the voltage time series
// on top and the histogram below, with the fitted Gaussian overlaid when
// sigma > 0. Parent directories are created as needed.
func WritePNG(path string, volts []float64, bins int) error {
	if len(volts) == 0 {
		return errors.New("export: no samples to plot")
	}

	ts, err := timeSeriesPlot(volts)
	if err != nil {
		return err
	}
	hp, err := histogramPlot(volts, bins)
	if err != nil {
		return err
	}

	img := vgimg.New(18*vg.Centimeter, 13*vg.Centimeter)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter * 2}
	canvases := plot.Align([][]*plot.Plot{{ts}, {hp}}, tiles, dc)
	ts.Draw(canvases[0][0])
	hp.Draw(canvases[1][0])

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create png directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png file: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func timeSeriesPlot(volts []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Time series (sample index)"
	p.X.Label.Text = "Sample"
	p.Y.Label.Text = "Voltage [V]"

	pts := make(plotter.XYs, len(volts))
	for i, v := range volts {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	p.Add(line)
	return p, nil
}

func histogramPlot(volts []float64, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "Voltage [V]"
	p.Y.Label.Text = "Count per bin"

	bars, err := plotter.NewHist(plotter.Values(volts), bins)
	if err != nil {
		return nil, err
	}
	p.Add(bars)

	r, err := viewer.Summarize(volts)
	if err != nil {
		return nil, err
	}
	if r.Sigma == 0 {
		p.Title.Text = "Histogram (sigma=0: all samples identical)"
		return p, nil
	}

	h, err := hist.New(volts, bins)
	if err != nil {
		return nil, err
	}
	expected, err := h.Overlay(r.Mu, r.Sigma, r.N)
	if err != nil {
		return nil, err
	}
	fit := make(plotter.XYs, len(expected))
	for i, center := range h.Centers() {
		fit[i].X = center
		fit[i].Y = expected[i]
	}
	fitLine, err := plotter.NewLine(fit)
	if err != nil {
		return nil, err
	}
	p.Add(fitLine)
	p.Title.Text = "Histogram + Gaussian fit (mu, sigma from samples)"
	return p, nil
}
