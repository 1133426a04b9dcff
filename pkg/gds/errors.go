package gds

import "errors"

// Package errors returned by the decoder and the acquisition driver.
// They can be checked with errors.Is.
var (
	// ErrMalformedHeader is returned when header text is present but cannot
	// be parsed. More bytes will not fix a malformed header, so this is
	// reported immediately rather than waited out.
	ErrMalformedHeader = errors.New("gds: malformed header")

	// ErrTimeout is returned when no complete waveform was decoded within
	// the configured acquisition timeout.
	ErrTimeout = errors.New("gds: no complete data received from the oscilloscope within the timeout")
)
