// Package cliconfig layers the CLI configuration: built-in defaults, then
// the TOML config file, then OSZI_* environment variables, then flags.
// Explicitly set flags always win; the changed-flags map carries that
// information through the lower layers.
package cliconfig

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultBaud matches the GDS-1000B USB-CDC default.
const DefaultBaud = 115200

// Config holds CLI configuration for oszi-remote.
type Config struct {
	Port    string
	Baud    int
	Channel int
	Timeout time.Duration
	Bins    int

	CSVPath string
	PNGPath string

	NoShow  bool
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Baud:    DefaultBaud,
		Channel: 1,
		Timeout: 5 * time.Second,
		Bins:    60,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required (try --list-ports)")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("baud rate must be positive, got %d", c.Baud)
	}
	if c.Channel < 1 {
		return fmt.Errorf("channel must be >= 1, got %d", c.Channel)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Bins <= 0 {
		return fmt.Errorf("bin count must be positive, got %d", c.Bins)
	}
	return nil
}

// configSetter applies configuration values while respecting flag
// precedence: a value is only applied when the corresponding flag was not
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString is used for environment variables, which arrive as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
