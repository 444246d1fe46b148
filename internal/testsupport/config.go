package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"srvmaker/internal/topology"
)

// TopologyOption allows callers to customize the generated test topology.
type TopologyOption func(*topologyBuilder)

type topologyBuilder struct {
	t     testing.TB
	model *topology.Model
}

// NewTopology produces a structurally complete topology with one auth
// instance, no channels, and deterministic scalar values, then applies any
// provided options. Empty collections are non-nil so the encoded document
// passes the loader's required-field check.
func NewTopology(t testing.TB, opts ...TopologyOption) *topology.Model {
	t.Helper()

	db := func(name string) topology.Database {
		return topology.Database{
			IP:       "10.0.0.5",
			Port:     "3306",
			Database: name,
			User:     name + "_user",
			Password: name + "_pw",
			Sock:     "/var/run/mysqld.sock",
		}
	}
	model := &topology.Model{
		ServerName: "Test",
		Auth: topology.Auth{
			AuthServer:     "master",
			TrafficProfile: 1,
			Ports:          []topology.Port{{Port: 11001, P2PPort: 12001}},
		},
		Channels: topology.Channels{
			CommonMaps: [][]int64{},
			Settings:   []topology.Setting{},
		},
		Common: topology.Common{
			TablePostfix:               "",
			PassesPerSec:               25,
			DBIP:                       "127.0.0.1",
			DBPort:                     15000,
			SaveEventSecondCycle:       180,
			PingEventSecondCycle:       120,
			ViewRange:                  5000,
			LocaleService:              "europe",
			SpeedhackLimitCount:        100,
			SpeedhackLimitBonus:        80,
			PKProtectLevel:             15,
			MallURL:                    "http://mall.test",
			TrafficProfile:             1,
			TestServer:                 0,
			MaxLevel:                   99,
			DisableItemBonusChangeTime: 0,
		},
		DB: topology.DB{
			BindPort:               15000,
			DBSleepMsec:            10,
			ClientHeartFPS:         60,
			HashPlayerLifeSec:      600,
			PlayerDeleteLevelLimit: 70,
			PlayerIDStart:          100,
			ItemIDRange:            topology.ItemIDRange{Start: 1000, End: 2000},
			TestServer:             0,
		},
		AdminpageIPs: topology.AdminpageIPs{IP: "127.0.0.1", Password: "admin"},
		Databases: topology.Databases{
			Player:  db("player"),
			Common:  db("common"),
			Log:     db("log"),
			Account: db("account"),
		},
	}

	builder := &topologyBuilder{t: t, model: model}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.model
}

// WithServerName overrides the server name.
func WithServerName(name string) TopologyOption {
	return func(b *topologyBuilder) {
		b.model.ServerName = name
	}
}

// WithAuthPorts replaces the auth instances with n instances on sequential
// ports.
func WithAuthPorts(n int) TopologyOption {
	return func(b *topologyBuilder) {
		ports := make([]topology.Port, 0, n)
		for i := 0; i < n; i++ {
			ports = append(ports, topology.Port{Port: int64(11001 + i), P2PPort: int64(12001 + i)})
		}
		b.model.Auth.Ports = ports
	}
}

// WithCommonMaps sets the shared map groups.
func WithCommonMaps(groups ...[]int64) TopologyOption {
	return func(b *topologyBuilder) {
		if groups == nil {
			groups = [][]int64{}
		}
		b.model.Channels.CommonMaps = groups
	}
}

// WithChannel appends a channel that uses the shared map groups.
func WithChannel(id int64) TopologyOption {
	return func(b *topologyBuilder) {
		b.model.Channels.Settings = append(b.model.Channels.Settings, channelSetting(id))
	}
}

// WithRenamedChannel appends a channel carrying an explicit rename.
func WithRenamedChannel(id int64, rename string) TopologyOption {
	return func(b *topologyBuilder) {
		setting := channelSetting(id)
		setting.Rename = &rename
		b.model.Channels.Settings = append(b.model.Channels.Settings, setting)
	}
}

// WithOverrideChannel appends a channel whose map groups replace the shared
// default.
func WithOverrideChannel(id int64, groups ...[]int64) TopologyOption {
	return func(b *topologyBuilder) {
		setting := channelSetting(id)
		if groups == nil {
			groups = [][]int64{}
		}
		setting.OverrideMaps = &groups
		b.model.Channels.Settings = append(b.model.Channels.Settings, setting)
	}
}

func channelSetting(id int64) topology.Setting {
	return topology.Setting{
		ChannelID: id,
		Port:      13000 + id,
		P2PPort:   14000 + id,
	}
}

// WriteTopology encodes model as JSON into dir/config.json and returns the
// file path.
func WriteTopology(t testing.TB, dir string, model *topology.Model) string {
	t.Helper()

	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		t.Fatalf("encode topology: %v", err)
	}
	path := filepath.Join(dir, topology.DefaultFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write topology: %v", err)
	}
	return path
}
