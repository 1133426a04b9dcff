// Package export writes acquisition results to files: raw samples as CSV
// and the time-series/histogram figure as PNG.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/oszi-tools/osziremote/pkg/gds"
)

// WriteCSV writes one row per sample as (index, value, raw_int16), in
// acquisition order, with a header row. The target file must not already
// exist; parent directories are created as needed.
func WriteCSV(path string, wf *gds.Waveform) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create csv directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("csv file already exists: %s", path)
		}
		return fmt.Errorf("create csv file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "value", "raw_int16"}); err != nil {
		f.Close()
		return err
	}
	for i := range wf.Volts {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(wf.Volts[i], 'g', -1, 64),
			strconv.Itoa(int(wf.Raw[i])),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
