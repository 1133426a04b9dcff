package gds

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
)

var verticalScaleRe = regexp.MustCompile(`Vertical Scale,([^;]+);`)

// waveformDataMarker introduces the SCPI binary block: the marker is
// followed by one ASCII digit n and then n ASCII digits giving the payload
// byte length.
var waveformDataMarker = []byte("Waveform Data;\n#")

// Decoder incrementally parses the GDS-1000B memory-transfer response
// (ASCII header + binary sample block). Input may arrive in chunks of any
// size with no alignment to protocol boundaries; partial state is kept
// across Feed calls.
//
// A Decoder is owned by exactly one acquisition and must not be used
// concurrently.
type Decoder struct {
	buf           []byte
	headerParsed  bool
	verticalScale float64
	payloadLen    int
}

// NewDecoder returns a Decoder ready to receive the first chunk.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed appends chunk to the pending buffer and attempts to complete a
// decode. It returns:
//
//   - (nil, nil) when more bytes are needed; the buffered input is retained
//     and parsing resumes on the next call.
//   - (wf, nil) when a full waveform was decoded. The decoder then accepts
//     a subsequent acquisition, though the driver uses a fresh Decoder per
//     acquisition.
//   - (nil, err) for a malformed header; err matches ErrMalformedHeader.
func (d *Decoder) Feed(chunk []byte) (*Waveform, error) {
	d.buf = append(d.buf, chunk...)

	if !d.headerParsed {
		m := verticalScaleRe.FindSubmatch(d.buf)
		if m == nil {
			return nil, nil
		}
		scale, err := strconv.ParseFloat(string(m[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: vertical scale %q", ErrMalformedHeader, m[1])
		}

		i := bytes.Index(d.buf, waveformDataMarker)
		if i < 0 {
			return nil, nil
		}

		p := i + len(waveformDataMarker)
		if p >= len(d.buf) {
			return nil, nil
		}
		c := d.buf[p]
		if c < '1' || c > '9' {
			return nil, fmt.Errorf("%w: block length digit count %q", ErrMalformedHeader, string(c))
		}
		nDigits := int(c - '0')
		p++

		if p+nDigits > len(d.buf) {
			// Length field not complete yet. Consume nothing; the whole
			// search is repeated when more bytes arrive.
			return nil, nil
		}
		length, err := strconv.Atoi(string(d.buf[p : p+nDigits]))
		if err != nil || length < 0 {
			return nil, fmt.Errorf("%w: block length %q", ErrMalformedHeader, d.buf[p:p+nDigits])
		}
		p += nDigits

		d.buf = d.buf[p:]
		d.verticalScale = scale
		d.payloadLen = length
		d.headerParsed = true
	}

	if len(d.buf) < d.payloadLen {
		return nil, nil
	}

	payload := d.buf[:d.payloadLen]
	d.buf = d.buf[d.payloadLen:]
	d.headerParsed = false

	return newWaveform(payload, d.verticalScale), nil
}
