// Package gds acquires and decodes memory waveform dumps from GW Instek
// GDS-1000B series oscilloscopes.
//
// The device answers a memory-dump request with an ASCII header followed by
// a binary sample block:
//
//	... Vertical Scale,2.000e-01; ... Waveform Data;
//	#<n><length><payload>
//
// where <n> is one ASCII digit giving the number of digits in <length>, and
// <payload> is <length> bytes of big-endian signed 16-bit samples. Volts are
// derived from raw samples as (raw / 25.0) * vertical scale.
//
// # Usage
//
// Feed a [Decoder] chunks as they arrive from the serial port:
//
//	dec := gds.NewDecoder()
//	wf, err := dec.Feed(chunk)
//	// wf == nil && err == nil: keep feeding
//
// Or let [Acquire] drive the whole request/decode cycle against a
// [Transport] with an overall deadline.
//
// A Decoder instance is owned by one acquisition; there is no internal
// locking and none is needed in the single-threaded polling model.
package gds
