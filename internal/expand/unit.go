package expand

import (
	"path/filepath"

	"srvmaker/internal/topology"
)

// Kind tags the variant of an emission unit.
type Kind int

const (
	KindAuth Kind = iota
	KindChannelPart
	KindDB
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindChannelPart:
		return "channel"
	case KindDB:
		return "db"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON plan output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// AuthDir is the parent directory of every auth instance.
const AuthDir = "auth"

// DBDir is the directory of the db role.
const DBDir = "db"

// Unit is one directory/symlinks/config bundle to generate. Only the fields
// relevant to Kind are set.
type Unit struct {
	Kind Kind `json:"kind"`
	// Dir is relative to the working directory.
	Dir        string `json:"dir"`
	Executable string `json:"executable"`
	// Index is the 1-based auth index or part index.
	Index     int             `json:"index,omitempty"`
	Port      int64           `json:"port,omitempty"`
	P2PPort   int64           `json:"p2p_port,omitempty"`
	ChannelID int64           `json:"channel_id,omitempty"`
	Naming    topology.Naming `json:"-"`
	Maps      []int64         `json:"maps,omitempty"`
}

// ChannelGroup holds the parts of one channel. Parts may be empty; the
// channel directory is still created.
type ChannelGroup struct {
	Dir   string `json:"dir"`
	Parts []Unit `json:"parts"`
}

// Plan is the ordered set of units derived from a topology.
type Plan struct {
	Auth     []Unit         `json:"auth"`
	Channels []ChannelGroup `json:"channels"`
	DB       Unit           `json:"db"`
}

// Units flattens the plan in emission order: auth instances, channel parts,
// then the db role.
func (p Plan) Units() []Unit {
	units := make([]Unit, 0, len(p.Auth)+p.PartCount()+1)
	units = append(units, p.Auth...)
	for _, group := range p.Channels {
		units = append(units, group.Parts...)
	}
	return append(units, p.DB)
}

// PartCount returns the number of channel parts across all channels.
func (p Plan) PartCount() int {
	n := 0
	for _, group := range p.Channels {
		n += len(group.Parts)
	}
	return n
}

func partDir(channelDir string, part int) string {
	return filepath.Join(channelDir, "part"+itoa(part))
}
