package stats

import (
	"errors"
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	got, err := Mean([]float64{2.0, 4.0})
	if err != nil {
		t.Fatalf("Mean() error: %v", err)
	}
	if got != 3.0 {
		t.Errorf("Mean([2,4]) = %v, want 3", got)
	}
}

func TestMeanEmpty(t *testing.T) {
	if _, err := Mean(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Mean(nil) error = %v, want ErrEmptyInput", err)
	}
}

func TestSampleStdDev(t *testing.T) {
	got, err := SampleStdDev([]float64{2.0, 4.0})
	if err != nil {
		t.Fatalf("SampleStdDev() error: %v", err)
	}
	if got != math.Sqrt2 {
		t.Errorf("SampleStdDev([2,4]) = %v, want sqrt(2)", got)
	}
}

func TestSampleStdDevInsufficient(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
	}{
		{"single sample", []float64{5.0}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleStdDev(tt.xs); !errors.Is(err, ErrInsufficientSamples) {
				t.Errorf("SampleStdDev(%v) error = %v, want ErrInsufficientSamples", tt.xs, err)
			}
		})
	}
}

func TestGaussianPDF(t *testing.T) {
	got, err := GaussianPDF(0, 0, 1)
	if err != nil {
		t.Fatalf("GaussianPDF() error: %v", err)
	}
	const want = 0.3989422804014327
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("GaussianPDF(0,0,1) = %v, want %v", got, want)
	}
}

func TestGaussianPDFNonPositiveSigma(t *testing.T) {
	for _, sigma := range []float64{0, -1} {
		if _, err := GaussianPDF(0, 0, sigma); !errors.Is(err, ErrNonPositiveSigma) {
			t.Errorf("GaussianPDF(sigma=%v) error = %v, want ErrNonPositiveSigma", sigma, err)
		}
	}
}

func TestExpectedCount(t *testing.T) {
	got, err := ExpectedCount(0, 0.5, 0, 1, 100)
	if err != nil {
		t.Fatalf("ExpectedCount() error: %v", err)
	}
	want := 100 * 0.5 * 0.3989422804014327
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ExpectedCount = %v, want %v", got, want)
	}
}

func TestExpectedCountNonPositiveSigma(t *testing.T) {
	if _, err := ExpectedCount(0, 0.5, 0, 0, 100); !errors.Is(err, ErrNonPositiveSigma) {
		t.Errorf("ExpectedCount(sigma=0) error = %v, want ErrNonPositiveSigma", err)
	}
}
