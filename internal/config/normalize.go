package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.MusicDir, err = ExpandPath(c.Paths.MusicDir); err != nil {
		return fmt.Errorf("paths.music_dir: %w", err)
	}
	if c.Paths.PlaylistDir, err = ExpandPath(c.Paths.PlaylistDir); err != nil {
		return fmt.Errorf("paths.playlist_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMatching() {
	if len(c.Matching.Extensions) == 0 {
		c.Matching.Extensions = append([]string(nil), DefaultExtensions...)
	}
	for i, ext := range c.Matching.Extensions {
		c.Matching.Extensions[i] = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	}
	if len(c.Matching.LiveIndicators) == 0 {
		c.Matching.LiveIndicators = append([]string(nil), DefaultLiveIndicators...)
	}
	for i, word := range c.Matching.LiveIndicators {
		c.Matching.LiveIndicators[i] = strings.ToLower(strings.TrimSpace(word))
	}
	if c.Matching.MaxInteractive == 0 {
		c.Matching.MaxInteractive = defaultMaxInteractive
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Owner = strings.TrimSpace(c.Output.Owner)
	if c.Output.Owner == "" {
		c.Output.Owner = defaultOwner
	}
	c.Output.Group = strings.TrimSpace(c.Output.Group)
	if c.Output.Group == "" {
		c.Output.Group = defaultGroup
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
