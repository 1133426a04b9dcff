package gds

import "encoding/binary"

// ADFactor is the instrument's fixed digitization divisor. Raw sample counts
// are divided by it before the per-acquisition vertical scale is applied.
const ADFactor = 25.0

// Waveform is one decoded oscilloscope memory dump.
// It is constructed exactly once per successful decode and never mutated;
// consumers (CSV exporter, viewer) only read it.
type Waveform struct {
	// Raw holds the digitized samples in acquisition order.
	Raw []int16

	// Volts holds the same samples converted to volts. Always the same
	// length and order as Raw.
	Volts []float64
}

// Len returns the number of samples in the waveform.
func (w *Waveform) Len() int {
	return len(w.Raw)
}

// newWaveform decodes a binary payload of big-endian signed 16-bit samples.
// An odd-length payload drops its trailing byte; real device responses are
// always even-length, so this is not reported as an error.
func newWaveform(payload []byte, verticalScale float64) *Waveform {
	n := len(payload) / 2
	wf := &Waveform{
		Raw:   make([]int16, 0, n),
		Volts: make([]float64, 0, n),
	}
	for i := 0; i+1 < len(payload); i += 2 {
		r := int16(binary.BigEndian.Uint16(payload[i : i+2]))
		wf.Raw = append(wf.Raw, r)
		wf.Volts = append(wf.Volts, (float64(r)/ADFactor)*verticalScale)
	}
	return wf
}
