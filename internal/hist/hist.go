// Package hist bins waveform voltages into a uniform histogram and computes
// the Gaussian-fit overlay for it. Binning is a presentation concern: the
// decoder and statistics stay independent of it.
package hist

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/oszi-tools/osziremote/pkg/stats"
)

// Histogram holds uniform-bin counts over the value range of one waveform.
type Histogram struct {
	// Edges are the bin boundaries, len = bins+1, ascending.
	Edges []float64

	// Counts are the per-bin sample counts, len = bins.
	Counts []float64
}

// New bins values into the given number of uniform bins spanning
// [min, max]. All-identical inputs are widened by half a volt on each side
// so every value lands in a well-defined bin.
func New(values []float64, bins int) (*Histogram, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("hist: bin count must be positive, got %d", bins)
	}
	if len(values) == 0 {
		return nil, errors.New("hist: no values")
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	lo := sorted[0]
	hi := sorted[len(sorted)-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	// gonum treats the top divider as exclusive; nudge it so the maximum
	// value is counted in the last bin.
	edges[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, edges, sorted, nil)
	return &Histogram{Edges: edges, Counts: counts}, nil
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int {
	return len(h.Counts)
}

// Width returns the uniform bin width.
func (h *Histogram) Width() float64 {
	return h.Edges[1] - h.Edges[0]
}

// Centers returns the midpoints of all bins.
func (h *Histogram) Centers() []float64 {
	centers := make([]float64, h.Bins())
	for i := range centers {
		centers[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return centers
}

// Overlay returns the per-bin counts a Gaussian with the given mean and
// standard deviation predicts for n samples. It fails for sigma <= 0;
// callers handle the all-identical-samples case before fitting.
func (h *Histogram) Overlay(mu, sigma float64, n int) ([]float64, error) {
	width := h.Width()
	expected := make([]float64, h.Bins())
	for i, center := range h.Centers() {
		ec, err := stats.ExpectedCount(center, width, mu, sigma, n)
		if err != nil {
			return nil, err
		}
		expected[i] = ec
	}
	return expected, nil
}
