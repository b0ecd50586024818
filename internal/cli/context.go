package cli

import (
	"strings"

	"github.com/mgpai22/aab/internal/config"
	"github.com/mgpai22/aab/internal/grouping"
	"github.com/mgpai22/aab/internal/logging"
	"github.com/mgpai22/aab/internal/project"
)

type commandContext struct {
	verbose     bool
	projectFlag string
	configFlag  string

	cfg    *config.Config
	logger *logging.Logger
}

func (c *commandContext) setup() error {
	cfg, resolved, exists, err := config.Load(strings.TrimSpace(c.configFlag))
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.Logging.Level
	if c.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
	if err != nil {
		return err
	}
	c.logger = logger

	c.logger.Debugw("configuration loaded",
		"path", resolved,
		"exists", exists,
	)
	return nil
}

func (c *commandContext) projectPath() string {
	if p := strings.TrimSpace(c.projectFlag); p != "" {
		return p
	}
	return c.cfg.Project.Path
}

func (c *commandContext) store() *project.Store {
	return project.Open(c.projectPath(), c.logger)
}

func (c *commandContext) engine() *grouping.Engine {
	engine := grouping.NewEngine(c.logger)
	engine.CheckInvariants = c.cfg.Engine.CheckInvariants
	return engine
}
