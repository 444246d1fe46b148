package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateScript(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if err := ensureSingleComponent(map[string]string{
		"paths.shared_dir":    c.Paths.SharedDir,
		"paths.topology_file": c.Paths.TopologyFile,
	}); err != nil {
		return err
	}
	if c.Paths.SharedDir == c.Paths.TopologyFile {
		return errors.New("paths.shared_dir and paths.topology_file must differ")
	}
	if !filepath.IsAbs(c.Paths.DeployRoot) {
		return errors.New("paths.deploy_root must be an absolute path")
	}
	return nil
}

func (c *Config) validateScript() error {
	if err := ensureSingleComponent(map[string]string{"script.file_name": c.Script.FileName}); err != nil {
		return err
	}
	if c.Script.SettleSeconds < 0 {
		return errors.New("script.settle_seconds must be >= 0")
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
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

// ValidateWorkdir rejects settings that would place tool output inside the
// working directory root, where the guard would treat it as a foreign entry.
func (c *Config) ValidateWorkdir(root string) error {
	if c.Logging.File == "" {
		return nil
	}
	candidates := []string{root}
	if resolved, err := filepath.EvalSymlinks(root); err == nil && resolved != root {
		candidates = append(candidates, resolved)
	}
	for _, dir := range candidates {
		rel, err := filepath.Rel(dir, c.Logging.File)
		if err != nil {
			continue
		}
		if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("logging.file %s must be outside the working directory %s", c.Logging.File, root)
		}
	}
	return nil
}

// ensureSingleComponent rejects values that would place an entry outside the
// working directory's top level.
func ensureSingleComponent(values map[string]string) error {
	for key, value := range values {
		if value == "." || value == ".." || filepath.Base(value) != value {
			return fmt.Errorf("%s must be a plain name, got %q", key, value)
		}
	}
	return nil
}
