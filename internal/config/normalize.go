package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizePaths()
	c.normalizeScript()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() {
	c.Paths.SharedDir = strings.TrimSpace(c.Paths.SharedDir)
	if c.Paths.SharedDir == "" {
		c.Paths.SharedDir = defaultSharedDir
	}
	c.Paths.TopologyFile = strings.TrimSpace(c.Paths.TopologyFile)
	if c.Paths.TopologyFile == "" {
		c.Paths.TopologyFile = defaultTopologyFile
	}
	c.Paths.DeployRoot = strings.TrimSpace(c.Paths.DeployRoot)
	if c.Paths.DeployRoot == "" {
		c.Paths.DeployRoot = defaultDeployRoot
	}
	// The deploy root describes the target host, so it is cleaned but not
	// made absolute against the local working directory.
	c.Paths.DeployRoot = filepath.Clean(c.Paths.DeployRoot)
}

func (c *Config) normalizeScript() {
	c.Script.FileName = strings.TrimSpace(c.Script.FileName)
	if c.Script.FileName == "" {
		c.Script.FileName = defaultScriptName
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
