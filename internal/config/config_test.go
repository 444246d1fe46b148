package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"srvmaker/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected settings file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "srvmaker", "settings.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Paths.SharedDir != "share" || cfg.Paths.TopologyFile != "config.json" {
		t.Fatalf("unexpected path defaults: %+v", cfg.Paths)
	}
	if cfg.Script.FileName != "start.sh" || cfg.Script.SettleSeconds != 3 {
		t.Fatalf("unexpected script defaults: %+v", cfg.Script)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if got := cfg.ServerRoot("Alpha"); got != "/home/Alpha" {
		t.Fatalf("unexpected server root %q", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	configPath := filepath.Join(tempDir, "srvmaker.toml")

	type payload struct {
		Paths struct {
			DeployRoot string `toml:"deploy_root"`
		} `toml:"paths"`
		Script struct {
			SettleSeconds int `toml:"settle_seconds"`
		} `toml:"script"`
		Logging struct {
			Level string `toml:"level"`
			File  string `toml:"file"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.DeployRoot = "/srv/game/"
	custom.Script.SettleSeconds = 0
	custom.Logging.Level = " DEBUG "
	custom.Logging.File = "~/logs/srvmaker.log"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected existing config at %s, got %q exists=%v", configPath, resolved, exists)
	}
	if cfg.Paths.DeployRoot != "/srv/game" {
		t.Fatalf("unexpected deploy root %q", cfg.Paths.DeployRoot)
	}
	if cfg.Script.SettleSeconds != 0 {
		t.Fatalf("expected explicit zero settle delay, got %d", cfg.Script.SettleSeconds)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized level, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.File != filepath.Join(tempDir, "logs", "srvmaker.log") {
		t.Fatalf("expected expanded log file, got %q", cfg.Logging.File)
	}
	if cfg.Paths.SharedDir != "share" {
		t.Fatalf("expected untouched defaults, got %q", cfg.Paths.SharedDir)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"nested shared dir", "[paths]\nshared_dir = \"a/b\"\n", "paths.shared_dir"},
		{"dot topology", "[paths]\ntopology_file = \"..\"\n", "paths.topology_file"},
		{"same names", "[paths]\nshared_dir = \"x\"\ntopology_file = \"x\"\n", "must differ"},
		{"relative deploy root", "[paths]\ndeploy_root = \"home\"\n", "paths.deploy_root"},
		{"negative settle", "[script]\nsettle_seconds = -1\n", "script.settle_seconds"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"unknown key", "[paths]\nshare = \"x\"\n", "parse settings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample settings failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	want := config.Default()
	if cfg.Paths != want.Paths || cfg.Script != want.Script || cfg.Logging != want.Logging {
		t.Fatalf("sample should match defaults, got %+v", cfg)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/x/y")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "x", "y") {
		t.Fatalf("unexpected expansion %q", got)
	}
}

func TestValidateWorkdirRejectsLogFileInside(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()

	if err := cfg.ValidateWorkdir(root); err != nil {
		t.Fatalf("no log file should pass: %v", err)
	}

	cfg.Logging.File = filepath.Join(root, "srvmaker.log")
	if err := cfg.ValidateWorkdir(root); err == nil || !strings.Contains(err.Error(), "logging.file") {
		t.Fatalf("expected logging.file error, got %v", err)
	}

	cfg.Logging.File = filepath.Join(root, "logs", "srvmaker.log")
	if err := cfg.ValidateWorkdir(root); err == nil {
		t.Fatal("expected error for a log file nested in the working directory")
	}

	cfg.Logging.File = filepath.Join(t.TempDir(), "srvmaker.log")
	if err := cfg.ValidateWorkdir(root); err != nil {
		t.Fatalf("log file outside the working directory should pass: %v", err)
	}
}
