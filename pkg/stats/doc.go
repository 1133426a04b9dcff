// Package stats provides the descriptive statistics used for noise
// characterization: mean, sample standard deviation, and the Gaussian
// density used to overlay a fitted curve on a waveform histogram.
//
// All functions are pure and stateless. Degenerate inputs (empty sequence,
// a single sample for the sample standard deviation, non-positive sigma)
// return typed domain errors rather than NaN or zero.
package stats
