package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oszi-tools/osziremote/pkg/gds"
)

func testWaveform() *gds.Waveform {
	return &gds.Waveform{
		Raw:   []int16{1, -1},
		Volts: []float64{0.2, -0.2},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteCSV(path, testWaveform()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	want := []string{
		"index,value,raw_int16",
		"0,0.2,1",
		"1,-0.2,-1",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), b)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWriteCSVRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("precious"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := WriteCSV(path, testWaveform())
	if err == nil {
		t.Fatal("WriteCSV() overwrote an existing file")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v, want mention of existing file", err)
	}

	b, _ := os.ReadFile(path)
	if string(b) != "precious" {
		t.Error("existing file content was modified")
	}
}

func TestWriteCSVCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.csv")
	if err := WriteCSV(path, testWaveform()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat: %v", err)
	}
}
