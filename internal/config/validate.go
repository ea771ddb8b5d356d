package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.AcceptMargin < 0 || c.Matching.AcceptMargin > 1 {
		return errors.New("matching.accept_margin must be between 0 and 1")
	}
	if c.Matching.FlacBonus < 0 || c.Matching.FlacBonus > 0.5 {
		return errors.New("matching.flac_bonus must be between 0 and 0.5")
	}
	if c.Matching.MaxInteractive < 1 || c.Matching.MaxInteractive > 100 {
		return errors.New("matching.max_interactive must be between 1 and 100")
	}
	for _, ext := range c.Matching.Extensions {
		if ext == "" {
			return errors.New("matching.extensions must not contain empty entries")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
