package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Domain errors. Statistics on degenerate input fail loudly instead of
// returning a placeholder value.
var (
	// ErrEmptyInput is returned when a function requires at least one sample.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrInsufficientSamples is returned by SampleStdDev for fewer than two
	// samples, where the N-1 divisor is undefined.
	ErrInsufficientSamples = errors.New("stats: sample standard deviation requires at least two samples")

	// ErrNonPositiveSigma is returned by GaussianPDF for sigma <= 0, where
	// the density is undefined. Callers must branch around the degenerate
	// all-identical-samples case instead of calling it.
	ErrNonPositiveSigma = errors.New("stats: sigma must be positive")
)

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	return stat.Mean(xs, nil), nil
}

// SampleStdDev returns the standard deviation of xs with Bessel's
// correction (N-1 divisor).
func SampleStdDev(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, ErrInsufficientSamples
	}
	return stat.StdDev(xs, nil), nil
}

// GaussianPDF evaluates the normal density with mean mu and standard
// deviation sigma at x.
func GaussianPDF(x, mu, sigma float64) (float64, error) {
	if sigma <= 0 {
		return 0, ErrNonPositiveSigma
	}
	return distuv.Normal{Mu: mu, Sigma: sigma}.Prob(x), nil
}

// ExpectedCount scales the fitted Gaussian density into the count expected
// in a uniform histogram bin: n * binWidth * pdf(binCenter).
func ExpectedCount(binCenter, binWidth, mu, sigma float64, n int) (float64, error) {
	pdf, err := GaussianPDF(binCenter, mu, sigma)
	if err != nil {
		return 0, err
	}
	return float64(n) * binWidth * pdf, nil
}
