package config

import "strings"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Export: Export{
			Format: "srt",
		},
		Engine: Engine{
			CheckInvariants: true,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
		Project: Project{
			Path: "aab.project.json",
		},
	}
}

func (c *Config) normalize() error {
	c.Export.Format = strings.ToLower(strings.TrimSpace(c.Export.Format))
	if c.Export.Format == "" {
		c.Export.Format = "srt"
	}
	if dir := strings.TrimSpace(c.Export.OutputDir); dir != "" {
		expanded, err := expandPath(dir)
		if err != nil {
			return err
		}
		c.Export.OutputDir = expanded
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	c.Project.Path = strings.TrimSpace(c.Project.Path)
	if c.Project.Path == "" {
		c.Project.Path = "aab.project.json"
	}
	return nil
}
