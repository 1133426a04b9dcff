package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but keeps durations as strings to stay TOML
// friendly.
type FileConfig struct {
	Port    string `toml:"port"`
	Baud    int    `toml:"baud"`
	Channel int    `toml:"channel"`
	Timeout string `toml:"timeout"`
	Bins    int    `toml:"bins"`
	CSVPath string `toml:"csv"`
	PNGPath string `toml:"png"`
	NoShow  *bool  `toml:"no_show"`
	Verbose *bool  `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.oszi-remote/config.toml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".oszi-remote", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies file values onto cfg, skipping fields whose flags
// were explicitly set.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("port", fc.Port, &cfg.Port)
	s.setInt("baud", fc.Baud, &cfg.Baud)
	s.setInt("channel", fc.Channel, &cfg.Channel)
	s.setInt("bins", fc.Bins, &cfg.Bins)
	s.setString("csv", fc.CSVPath, &cfg.CSVPath)
	s.setString("png", fc.PNGPath, &cfg.PNGPath)

	if err := s.setDuration("timeout", fc.Timeout, &cfg.Timeout); err != nil {
		return err
	}

	s.setBool("no-show", fc.NoShow, &cfg.NoShow)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
