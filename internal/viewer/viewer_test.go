package viewer

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/oszi-tools/osziremote/pkg/stats"
)

func TestSummarize(t *testing.T) {
	r, err := Summarize([]float64{0.2, -0.2, 0.2})
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}

	if r.N != 3 {
		t.Errorf("N = %d, want 3", r.N)
	}
	if r.Min != -0.2 || r.Max != 0.2 {
		t.Errorf("Min/Max = %v/%v, want -0.2/0.2", r.Min, r.Max)
	}
	if r.Unique != 2 {
		t.Errorf("Unique = %d, want 2", r.Unique)
	}

	wantMu := (0.2 - 0.2 + 0.2) / 3
	if math.Abs(r.Mu-wantMu) > 1e-15 {
		t.Errorf("Mu = %v, want %v", r.Mu, wantMu)
	}
	if r.Sigma <= 0 {
		t.Errorf("Sigma = %v, want > 0", r.Sigma)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, stats.ErrEmptyInput) {
		t.Errorf("Summarize(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestSummarizeSingleSample(t *testing.T) {
	r, err := Summarize([]float64{5.0})
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if r.Sigma != 0 {
		t.Errorf("Sigma = %v, want 0 for a single sample", r.Sigma)
	}
	if r.Mu != 5.0 {
		t.Errorf("Mu = %v, want 5", r.Mu)
	}
}

func TestWriteSummary(t *testing.T) {
	var buf strings.Builder
	WriteSummary(&buf, Report{N: 4, Min: -1, Max: 1, Unique: 3, Mu: 0.25, Sigma: 0.5})

	out := buf.String()
	for _, want := range []string{"N=4", "min=-1", "max=1", "unique=3", "mu=0.25", "sigma=0.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary %q missing %q", out, want)
		}
	}
}

func TestWriteHistogram(t *testing.T) {
	volts := []float64{-0.2, -0.1, -0.1, 0.0, 0.0, 0.0, 0.1, 0.1, 0.2}

	var buf strings.Builder
	if err := WriteHistogram(&buf, volts, 5); err != nil {
		t.Fatalf("WriteHistogram() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want one per bin (5):\n%s", len(lines), buf.String())
	}
	if !strings.Contains(buf.String(), "(fit ") {
		t.Errorf("histogram missing Gaussian-fit column:\n%s", buf.String())
	}
}

func TestWriteHistogramAllIdentical(t *testing.T) {
	var buf strings.Builder
	if err := WriteHistogram(&buf, []float64{1, 1, 1, 1}, 4); err != nil {
		t.Fatalf("WriteHistogram() error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "sigma=0") {
		t.Errorf("degenerate histogram missing sigma=0 note:\n%s", out)
	}
	if strings.Contains(out, "(fit ") {
		t.Errorf("degenerate histogram must not draw a Gaussian fit:\n%s", out)
	}
}
