// Package viewer renders the acquisition result for the terminal: a summary
// line with the noise figures and a text histogram with the Gaussian-fit
// expected counts alongside the observed ones.
package viewer

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/oszi-tools/osziremote/internal/hist"
	"github.com/oszi-tools/osziremote/pkg/stats"
)

// Report holds the derived figures for one acquisition.
type Report struct {
	N      int
	Min    float64
	Max    float64
	Unique int

	// Mu is the arithmetic mean of the voltages.
	Mu float64

	// Sigma is the sample standard deviation. It is zero when fewer than
	// two samples were acquired or when all samples are identical; in
	// either case no Gaussian fit is drawn.
	Sigma float64
}

// Summarize computes the report for a non-empty voltage sequence.
func Summarize(volts []float64) (Report, error) {
	mu, err := stats.Mean(volts)
	if err != nil {
		return Report{}, err
	}

	r := Report{N: len(volts), Min: volts[0], Max: volts[0], Mu: mu}
	seen := make(map[float64]struct{}, len(volts))
	for _, v := range volts {
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
		seen[v] = struct{}{}
	}
	r.Unique = len(seen)

	if len(volts) >= 2 {
		sigma, err := stats.SampleStdDev(volts)
		if err != nil {
			return Report{}, err
		}
		r.Sigma = sigma
	}
	return r, nil
}

// WriteSummary writes the one-line acquisition summary.
func WriteSummary(w io.Writer, r Report) {
	fmt.Fprintf(w, "N=%d  min=%.6g  max=%.6g  unique=%d  mu=%.6g V  sigma=%.6g V\n",
		r.N, r.Min, r.Max, r.Unique, r.Mu, r.Sigma)
}

// barWidth is the widest count bar in the text histogram.
const barWidth = 50

// WriteHistogram writes a text histogram of the voltages with the
// Gaussian-fit expected count next to each bin. When sigma is zero the fit
// column is omitted and a note is printed instead.
func WriteHistogram(w io.Writer, volts []float64, bins int) error {
	h, err := hist.New(volts, bins)
	if err != nil {
		return err
	}
	r, err := Summarize(volts)
	if err != nil {
		return err
	}

	var expected []float64
	if r.Sigma > 0 {
		expected, err = h.Overlay(r.Mu, r.Sigma, r.N)
		if err != nil {
			return err
		}
	}

	maxCount := 0.0
	for _, c := range h.Counts {
		maxCount = math.Max(maxCount, c)
	}

	centers := h.Centers()
	for i, c := range h.Counts {
		n := 0
		if maxCount > 0 {
			n = int(math.Round(c / maxCount * barWidth))
		}
		fmt.Fprintf(w, "%12.5g | %-*s %5.0f", centers[i], barWidth, strings.Repeat("#", n), c)
		if expected != nil {
			fmt.Fprintf(w, "  (fit %.1f)", expected[i])
		}
		fmt.Fprintln(w)
	}

	if expected == nil {
		fmt.Fprintln(w, "sigma=0: all samples identical, no Gaussian fit")
	}
	return nil
}
