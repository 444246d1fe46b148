package topology

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Naming resolves a channel's rename-or-derive choice once so every use site
// (directory name, executable name) agrees.
type Naming struct {
	Explicit  string
	ChannelID int64
}

// IsExplicit reports whether the channel carries a rename.
func (n Naming) IsExplicit() bool {
	return n.Explicit != ""
}

// Dir returns the channel directory name.
func (n Naming) Dir() string {
	if n.IsExplicit() {
		return n.Explicit
	}
	return "channel" + strconv.FormatInt(n.ChannelID, 10)
}

// Executable returns the executable (and link) name for the given 1-based
// part index.
func (n Naming) Executable(part int) string {
	if n.IsExplicit() {
		return n.Explicit
	}
	return "game" + strconv.FormatInt(n.ChannelID, 10) + "_" + strconv.Itoa(part)
}

// Naming returns the channel's naming choice.
func (s Setting) Naming() Naming {
	n := Naming{ChannelID: s.ChannelID}
	if s.Rename != nil {
		n.Explicit = *s.Rename
	}
	return n
}

// EffectiveMaps returns the override map groups when present, otherwise the
// shared default.
func (s Setting) EffectiveMaps(channels Channels) [][]int64 {
	if s.OverrideMaps != nil {
		return *s.OverrideMaps
	}
	return channels.CommonMaps
}

// ServerSlug returns the lower-cased server name used for shared-resource
// subdirectory names.
func (m *Model) ServerSlug() string {
	return cases.Lower(language.Und).String(m.ServerName)
}

// HotbackupDatabase returns the hotbackup descriptor, falling back to the
// player descriptor.
func (d Databases) HotbackupDatabase() Database {
	if d.Hotbackup != nil {
		return *d.Hotbackup
	}
	return d.Player
}
