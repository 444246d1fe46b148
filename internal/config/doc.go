// Package config loads, normalizes, and validates srvmaker's own settings.
//
// Settings are distinct from the topology description: they name the
// shared-resource directory and topology file expected in the working
// directory, the deploy root written into the start script, and logging
// preferences. They are read from a TOML file (by default
// ~/.config/srvmaker/settings.toml); a missing file yields the repository
// defaults.
//
// Always obtain settings through this package so downstream code receives
// expanded paths and clear validation errors.
package config
