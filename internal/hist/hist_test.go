package hist

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/oszi-tools/osziremote/pkg/stats"
)

func TestNew(t *testing.T) {
	h, err := New([]float64{0, 1, 2, 3}, 2)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if got := h.Bins(); got != 2 {
		t.Fatalf("Bins() = %d, want 2", got)
	}
	if got := h.Width(); got != 1.5 {
		t.Errorf("Width() = %v, want 1.5", got)
	}
	if want := []float64{2, 2}; !reflect.DeepEqual(h.Counts, want) {
		t.Errorf("Counts = %v, want %v", h.Counts, want)
	}
	// The top edge is nudged up by one ulp for gonum's exclusive divider,
	// so centers are compared with a tolerance.
	for i, want := range []float64{0.75, 2.25} {
		if got := h.Centers()[i]; math.Abs(got-want) > 1e-12 {
			t.Errorf("Centers()[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestNewCountsEveryValue(t *testing.T) {
	// The maximum must land in the last bin despite gonum's exclusive top
	// divider.
	values := []float64{-0.2, -0.1, 0.0, 0.1, 0.2}
	h, err := New(values, 4)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	total := 0.0
	for _, c := range h.Counts {
		total += c
	}
	if total != float64(len(values)) {
		t.Errorf("total count = %v, want %d", total, len(values))
	}
	if h.Counts[len(h.Counts)-1] == 0 {
		t.Error("maximum value was not counted in the last bin")
	}
}

func TestNewAllIdentical(t *testing.T) {
	h, err := New([]float64{1, 1, 1}, 3)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if want := []float64{0, 3, 0}; !reflect.DeepEqual(h.Counts, want) {
		t.Errorf("Counts = %v, want %v", h.Counts, want)
	}
}

func TestNewInvalidInput(t *testing.T) {
	if _, err := New(nil, 10); err == nil {
		t.Error("New(no values) expected error")
	}
	if _, err := New([]float64{1}, 0); err == nil {
		t.Error("New(bins=0) expected error")
	}
}

func TestOverlay(t *testing.T) {
	h, err := New([]float64{-3, -1, 0, 1, 3}, 3)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	expected, err := h.Overlay(0, 1, 5)
	if err != nil {
		t.Fatalf("Overlay() error: %v", err)
	}
	if len(expected) != h.Bins() {
		t.Fatalf("len(expected) = %d, want %d", len(expected), h.Bins())
	}

	// The bin containing the mean carries the largest expected count, and
	// each value matches the scaling formula exactly.
	maxIdx := 0
	for i, e := range expected {
		if e > expected[maxIdx] {
			maxIdx = i
		}
		pdf, err := stats.GaussianPDF(h.Centers()[i], 0, 1)
		if err != nil {
			t.Fatalf("GaussianPDF() error: %v", err)
		}
		want := 5 * h.Width() * pdf
		if math.Abs(e-want) > 1e-12 {
			t.Errorf("expected[%d] = %v, want %v", i, e, want)
		}
	}
	if maxIdx != 1 {
		t.Errorf("largest expected count in bin %d, want middle bin 1", maxIdx)
	}
}

func TestOverlayNonPositiveSigma(t *testing.T) {
	h, err := New([]float64{1, 2}, 2)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := h.Overlay(1.5, 0, 2); !errors.Is(err, stats.ErrNonPositiveSigma) {
		t.Errorf("Overlay(sigma=0) error = %v, want ErrNonPositiveSigma", err)
	}
}
