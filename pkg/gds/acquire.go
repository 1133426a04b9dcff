package gds

import (
	"context"
	"fmt"
	"time"

	"github.com/oszi-tools/osziremote/pkg/log"
)

// Transport is the byte-oriented serial connection an acquisition runs over.
//
// WriteLine sends one command line; the implementation appends the line
// terminator. ReadAvailable returns whatever bytes are currently available,
// blocking at most for the transport's short internal read timeout, and
// returns an empty slice when nothing arrived. The caller owns the transport
// lifetime; Acquire never closes it.
type Transport interface {
	WriteLine(line string) error
	ReadAvailable() ([]byte, error)
}

// Config controls a single acquisition.
type Config struct {
	// Channel is the oscilloscope channel to dump.
	Channel int

	// Timeout bounds the wall-clock time from the moment the request
	// commands are sent until a complete waveform must have been decoded.
	Timeout time.Duration

	// PollInterval is how long to wait before re-reading when the
	// transport reported no pending bytes.
	PollInterval time.Duration
}

// DefaultConfig returns the acquisition defaults.
func DefaultConfig() Config {
	return Config{
		Channel:      1,
		Timeout:      5 * time.Second,
		PollInterval: 20 * time.Millisecond,
	}
}

// Acquire runs one full request/decode cycle against the transport.
//
// It writes exactly two command lines (":HEADer ON" and ":ACQ<n>:MEM?"),
// then polls the transport and feeds a fresh Decoder until a waveform
// completes. If the deadline passes first, it fails with ErrTimeout; a
// partial waveform is never returned. Malformed headers and transport I/O
// errors abort the acquisition immediately.
func Acquire(ctx context.Context, tr Transport, cfg Config, logger log.Logger) (*Waveform, error) {
	if logger == nil {
		logger = log.NewNoop()
	}
	def := DefaultConfig()
	if cfg.Channel <= 0 {
		cfg.Channel = def.Channel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = def.PollInterval
	}

	if err := tr.WriteLine(":HEADer ON"); err != nil {
		return nil, fmt.Errorf("enable verbose headers: %w", err)
	}
	if err := tr.WriteLine(fmt.Sprintf(":ACQ%d:MEM?", cfg.Channel)); err != nil {
		return nil, fmt.Errorf("request memory dump: %w", err)
	}
	logger.Debug("memory dump requested",
		log.Int("channel", cfg.Channel),
		log.Duration("timeout", cfg.Timeout))

	dec := NewDecoder()
	deadline := time.Now().Add(cfg.Timeout)
	received := 0

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		chunk, err := tr.ReadAvailable()
		if err != nil {
			return nil, fmt.Errorf("read from transport: %w", err)
		}

		if len(chunk) > 0 {
			received += len(chunk)
			wf, err := dec.Feed(chunk)
			if err != nil {
				return nil, err
			}
			if wf != nil {
				logger.Debug("waveform decoded",
					log.Int("samples", wf.Len()),
					log.Int("bytes", received))
				return wf, nil
			}
		} else {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(cfg.PollInterval):
			}
		}

		if time.Now().After(deadline) {
			logger.Debug("acquisition timed out", log.Int("bytes", received))
			return nil, ErrTimeout
		}
	}
}
