package topology

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"

	"github.com/tidwall/jsonc"

	"srvmaker/internal/faults"
)

//go:embed sample_topology.json
var sampleTopology []byte

// DefaultFileName is the topology file name looked up in the working
// directory.
const DefaultFileName = "config.json"

// Load reads and parses the topology file at path. A missing or unreadable
// file is reported as faults.ErrConfigMissing; content that does not parse,
// or lacks a top-level section, as faults.ErrConfigMalformed.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, faults.Wrap(faults.ErrConfigMissing, path, nil)
		}
		return nil, faults.Wrap(faults.ErrConfigMissing, path, err)
	}
	model, err := Parse(data)
	if err != nil {
		return nil, faults.Wrap(faults.ErrConfigMalformed, path, err)
	}
	return model, nil
}

// Parse strips comments and trailing commas from data and decodes the
// result into a Model. Every field except the pointer-typed ones must be
// present and non-null, at any depth.
func Parse(data []byte) (*Model, error) {
	stripped := jsonc.ToJSON(data)

	if err := requireFields("", stripped, reflect.TypeFor[Model]()); err != nil {
		return nil, err
	}

	var model Model
	if err := json.Unmarshal(stripped, &model); err != nil {
		return nil, fmt.Errorf("parse topology: %w", err)
	}
	for i, setting := range model.Channels.Settings {
		if setting.Rename != nil && *setting.Rename == "" {
			return nil, fmt.Errorf("field %q must not be empty", fmt.Sprintf("channels.settings[%d].rename", i))
		}
	}
	return &model, nil
}

// Sample returns the embedded sample topology document.
func Sample() []byte {
	out := make([]byte, len(sampleTopology))
	copy(out, sampleTopology)
	return out
}

// WriteSample writes the sample topology document to path. An existing file
// is only replaced when overwrite is set.
func WriteSample(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("topology file already exists at %s (use --overwrite to replace it)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check topology path: %w", err)
		}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create topology directory: %w", err)
		}
	}
	if err := os.WriteFile(path, sampleTopology, 0o644); err != nil {
		return faults.Wrap(faults.ErrFileWrite, path, err)
	}
	return nil
}
