package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateTimeline(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateExport() error {
	switch c.Export.Format {
	case "srt", "vtt", "ass", "json":
	default:
		return fmt.Errorf("export.format %q is not supported: use srt, vtt, ass, or json", c.Export.Format)
	}
	if c.Export.WrapWidth < 0 {
		return errors.New("export.wrap_width must be zero or positive")
	}
	return nil
}

func (c *Config) validateTimeline() error {
	if c.Timeline.JumpTolerance < 0 {
		return errors.New("timeline.jump_tolerance must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported: use console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported", c.Logging.Level)
	}
	return nil
}
