package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"srvmaker/internal/config"
	"srvmaker/internal/logging"
	"srvmaker/internal/scaffold"
)

type commandContext struct {
	settingsFlag *string
	logLevelFlag *string

	settingsOnce sync.Once
	settings     *config.Config
	settingsErr  error
}

func newCommandContext(settingsFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		settingsFlag: settingsFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureSettings() (*config.Config, error) {
	c.settingsOnce.Do(func() {
		var path string
		if c.settingsFlag != nil {
			path = strings.TrimSpace(*c.settingsFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.settingsErr = fmt.Errorf("load settings: %w", err)
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.settingsErr = fmt.Errorf("--log-level: %w", err)
					return
				}
			}
		}
		c.settings = cfg
	})
	return c.settings, c.settingsErr
}

// logger builds the run logger. Records go to the command's stderr and, when
// configured, to the log file; the returned function closes that file.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	cfg, err := c.ensureSettings()
	if err != nil {
		return nil, nil, err
	}
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr())
}

// runContext tags the command's context with a fresh run identifier.
func (c *commandContext) runContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithRunID(ctx, uuid.NewString())
}

// scaffoldOptions resolves the working directory and logger for a command.
// Callers must invoke the returned close function once the command is done.
func (c *commandContext) scaffoldOptions(cmd *cobra.Command, force bool) (scaffold.Options, func() error, error) {
	noop := func() error { return nil }
	cfg, err := c.ensureSettings()
	if err != nil {
		return scaffold.Options{}, noop, err
	}
	root, err := os.Getwd()
	if err != nil {
		return scaffold.Options{}, noop, fmt.Errorf("resolve working directory: %w", err)
	}
	if err := cfg.ValidateWorkdir(root); err != nil {
		return scaffold.Options{}, noop, fmt.Errorf("load settings: %w", err)
	}
	logger, closeLog, err := c.logger(cmd)
	if err != nil {
		return scaffold.Options{}, noop, err
	}
	return scaffold.Options{
		Root:     root,
		Settings: cfg,
		Force:    force,
		Logger:   logger,
	}, closeLog, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
