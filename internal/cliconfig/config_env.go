package cliconfig

import "os"

// ApplyEnvConfig applies OSZI_* environment variables onto cfg. Env values
// override the config file but lose to explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("port", os.Getenv("OSZI_PORT"), &cfg.Port)
	s.setString("csv", os.Getenv("OSZI_CSV"), &cfg.CSVPath)
	s.setString("png", os.Getenv("OSZI_PNG"), &cfg.PNGPath)

	if err := s.setIntFromString("baud", os.Getenv("OSZI_BAUD"), &cfg.Baud); err != nil {
		return err
	}
	if err := s.setIntFromString("channel", os.Getenv("OSZI_CHANNEL"), &cfg.Channel); err != nil {
		return err
	}
	if err := s.setIntFromString("bins", os.Getenv("OSZI_BINS"), &cfg.Bins); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("OSZI_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}

	s.setBoolFromString("no-show", os.Getenv("OSZI_NO_SHOW"), &cfg.NoShow)
	s.setBoolFromString("verbose", os.Getenv("OSZI_VERBOSE"), &cfg.Verbose)
	return nil
}
