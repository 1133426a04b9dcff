// Package serialport adapts a tarm/serial connection to the byte transport
// the acquisition driver expects, and enumerates candidate serial ports.
package serialport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// readTimeout is the per-read poll window. The driver loops on short reads
// and enforces its own overall deadline, so this only bounds how long one
// ReadAvailable call may block.
const readTimeout = 100 * time.Millisecond

const readBufSize = 4096

// Port is an open serial connection to the oscilloscope. It implements
// gds.Transport. The caller owns the lifetime: Open it, pass it to the
// driver, Close it afterwards.
type Port struct {
	conn io.ReadWriteCloser
	name string
}

// Open opens the named serial port at the given baud rate with short-poll
// read semantics.
func Open(name string, baud int) (*Port, error) {
	s, err := serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        baud,
		ReadTimeout: readTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", name, err)
	}
	return &Port{conn: s, name: name}, nil
}

// Name returns the device name the port was opened with.
func (p *Port) Name() string {
	return p.name
}

// WriteLine writes one newline-terminated command line.
func (p *Port) WriteLine(line string) error {
	if p.conn == nil {
		return errors.New("serialport: not open")
	}
	if _, err := p.conn.Write([]byte(line + "\n")); err != nil {
		return fmt.Errorf("write %s: %w", p.name, err)
	}
	return nil
}

// ReadAvailable returns whatever bytes arrived within one read timeout.
// tarm/serial reports a timed-out read as io.EOF; that means "nothing
// pending", not end of stream, so it is mapped to an empty result.
func (p *Port) ReadAvailable() ([]byte, error) {
	if p.conn == nil {
		return nil, errors.New("serialport: not open")
	}
	buf := make([]byte, readBufSize)
	n, err := p.conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", p.name, err)
	}
	return buf[:n], nil
}

// Close closes the underlying connection.
func (p *Port) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
