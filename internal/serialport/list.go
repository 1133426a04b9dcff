package serialport

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/tarm/serial"
)

// List returns candidate serial device names on this machine. On Unix-like
// systems it globs the usual device nodes; on Windows it probes COM ports
// by opening them, since there is nothing to glob.
func List() []string {
	if runtime.GOOS == "windows" {
		return listWindows()
	}

	patterns := []string{"/dev/ttyUSB*", "/dev/ttyACM*", "/dev/ttyS*"}
	if runtime.GOOS == "darwin" {
		patterns = []string{"/dev/tty.usbserial*", "/dev/tty.usbmodem*", "/dev/cu.*"}
	}

	var ports []string
	for _, pat := range patterns {
		matches, err := filepath.Glob(pat)
		if err != nil {
			continue
		}
		ports = append(ports, matches...)
	}
	sort.Strings(ports)
	return ports
}

func listWindows() []string {
	var ports []string
	for i := 1; i <= 32; i++ {
		name := fmt.Sprintf("COM%d", i)
		s, err := serial.OpenPort(&serial.Config{Name: name, Baud: 9600, ReadTimeout: readTimeout})
		if err != nil {
			continue
		}
		s.Close()
		ports = append(ports, name)
	}
	return ports
}
