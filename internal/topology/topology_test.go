package topology_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"srvmaker/internal/faults"
	"srvmaker/internal/testsupport"
	"srvmaker/internal/topology"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := topology.Load(filepath.Join(t.TempDir(), topology.DefaultFileName))
	if !errors.Is(err, faults.ErrConfigMissing) {
		t.Fatalf("expected ErrConfigMissing, got %v", err)
	}
	if errors.Is(err, faults.ErrConfigMalformed) {
		t.Fatal("missing file must not be reported as malformed")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, topology.DefaultFileName)
	if err := os.WriteFile(path, []byte(`{"server_name": `), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := topology.Load(path)
	if !errors.Is(err, faults.ErrConfigMalformed) {
		t.Fatalf("expected ErrConfigMalformed, got %v", err)
	}
}

func TestParseRequiresEverySection(t *testing.T) {
	_, err := topology.Parse([]byte(`{"server_name": "x", "auth": {}, "channels": {}}`))
	if err == nil {
		t.Fatal("expected error for missing sections")
	}
}

// fixtureDocument encodes a complete topology with one channel and lets edit
// change the decoded document before it is re-encoded.
func fixtureDocument(t *testing.T, edit func(doc map[string]any)) []byte {
	t.Helper()
	model := testsupport.NewTopology(t,
		testsupport.WithCommonMaps([]int64{1}),
		testsupport.WithChannel(1),
	)
	data, err := json.Marshal(model)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	edit(doc)
	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("re-encode fixture: %v", err)
	}
	return out
}

func section(doc map[string]any, keys ...string) map[string]any {
	current := doc
	for _, key := range keys {
		current = current[key].(map[string]any)
	}
	return current
}

func TestParseRejectsIncompleteDocuments(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(doc map[string]any)
		field string
	}{
		{"auth ports missing", func(doc map[string]any) { delete(section(doc, "auth"), "ports") }, "auth.ports"},
		{"common maps missing", func(doc map[string]any) { delete(section(doc, "channels"), "common_maps") }, "channels.common_maps"},
		{"setting port missing", func(doc map[string]any) {
			settings := section(doc, "channels")["settings"].([]any)
			delete(settings[0].(map[string]any), "p2p_port")
		}, "channels.settings[0].p2p_port"},
		{"common scalar missing", func(doc map[string]any) { delete(section(doc, "common"), "view_range") }, "common.view_range"},
		{"db range missing", func(doc map[string]any) { delete(section(doc, "db", "item_id_range"), "end") }, "db.item_id_range.end"},
		{"adminpage field missing", func(doc map[string]any) { delete(section(doc, "adminpage_ips"), "password") }, "adminpage_ips.password"},
		{"descriptor field missing", func(doc map[string]any) { delete(section(doc, "databases", "account"), "sock") }, "databases.account.sock"},
		{"section null", func(doc map[string]any) { doc["common"] = nil }, "common"},
		{"descriptor null", func(doc map[string]any) { section(doc, "databases")["log"] = nil }, "databases.log"},
		{"map group null", func(doc map[string]any) { section(doc, "channels")["common_maps"] = []any{nil} }, "channels.common_maps[0]"},
		{"empty rename", func(doc map[string]any) {
			settings := section(doc, "channels")["settings"].([]any)
			settings[0].(map[string]any)["rename"] = ""
		}, "channels.settings[0].rename"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := topology.Parse(fixtureDocument(t, tt.edit))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), `"`+tt.field+`"`) {
				t.Fatalf("expected error to name %q, got %v", tt.field, err)
			}
		})
	}
}

func TestParseRejectsNullDocument(t *testing.T) {
	if _, err := topology.Parse([]byte(`null`)); err == nil {
		t.Fatal("expected error for a null document")
	}
	allNull := []byte(`{"server_name": null, "auth": null, "channels": null, "common": null,
		"db": null, "adminpage_ips": null, "databases": null}`)
	if _, err := topology.Parse(allNull); err == nil {
		t.Fatal("expected error for null sections")
	}
}

func TestParseAcceptsOptionalFields(t *testing.T) {
	data := fixtureDocument(t, func(doc map[string]any) {
		settings := section(doc, "channels")["settings"].([]any)
		setting := settings[0].(map[string]any)
		setting["rename"] = nil
		setting["override_maps"] = nil
		section(doc, "databases")["hotbackup"] = nil
	})
	model, err := topology.Parse(data)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	setting := model.Channels.Settings[0]
	if setting.Rename != nil || setting.OverrideMaps != nil || model.Databases.Hotbackup != nil {
		t.Fatalf("expected optional fields to stay unset, got %+v", setting)
	}
}

func TestLoadReportsIncompleteDocumentAsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), topology.DefaultFileName)
	data := fixtureDocument(t, func(doc map[string]any) { delete(section(doc, "auth"), "ports") })
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := topology.Load(path); !errors.Is(err, faults.ErrConfigMalformed) {
		t.Fatalf("expected ErrConfigMalformed, got %v", err)
	}
}

func TestLoadRoundTripsFixture(t *testing.T) {
	dir := t.TempDir()
	model := testsupport.NewTopology(t,
		testsupport.WithAuthPorts(2),
		testsupport.WithCommonMaps([]int64{101, 102}, []int64{201}),
		testsupport.WithChannel(5),
		testsupport.WithRenamedChannel(6, "event"),
	)
	path := testsupport.WriteTopology(t, dir, model)

	loaded, err := topology.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !reflect.DeepEqual(loaded, model) {
		t.Fatalf("loaded model differs:\n got %+v\nwant %+v", loaded, model)
	}
}

func TestSampleParses(t *testing.T) {
	model, err := topology.Parse(topology.Sample())
	if err != nil {
		t.Fatalf("sample topology does not parse: %v", err)
	}
	if model.ServerSlug() != "sample" {
		t.Fatalf("unexpected server slug %q", model.ServerSlug())
	}
	if len(model.Channels.Settings) != 2 {
		t.Fatalf("expected 2 sample channels, got %d", len(model.Channels.Settings))
	}
	if model.Databases.Hotbackup != nil {
		t.Fatal("sample should rely on the hotbackup fallback")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), topology.DefaultFileName)
	if err := topology.WriteSample(path, false); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if err := topology.WriteSample(path, false); err == nil {
		t.Fatal("expected error when file exists")
	}
	if err := topology.WriteSample(path, true); err != nil {
		t.Fatalf("WriteSample with overwrite: %v", err)
	}
}

func TestNaming(t *testing.T) {
	rename := "event"
	tests := []struct {
		name    string
		setting topology.Setting
		dir     string
		exe     string
	}{
		{"derived", topology.Setting{ChannelID: 5}, "channel5", "game5_2"},
		{"explicit", topology.Setting{ChannelID: 5, Rename: &rename}, "event", "event"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			naming := tt.setting.Naming()
			if got := naming.Dir(); got != tt.dir {
				t.Fatalf("Dir() = %q, want %q", got, tt.dir)
			}
			if got := naming.Executable(2); got != tt.exe {
				t.Fatalf("Executable(2) = %q, want %q", got, tt.exe)
			}
		})
	}
}

func TestEffectiveMaps(t *testing.T) {
	channels := topology.Channels{CommonMaps: [][]int64{{1, 2}, {3}}}
	override := [][]int64{{9}}
	empty := [][]int64{}

	if got := (topology.Setting{}).EffectiveMaps(channels); !reflect.DeepEqual(got, channels.CommonMaps) {
		t.Fatalf("expected common maps, got %v", got)
	}
	if got := (topology.Setting{OverrideMaps: &override}).EffectiveMaps(channels); !reflect.DeepEqual(got, override) {
		t.Fatalf("expected override maps, got %v", got)
	}
	if got := (topology.Setting{OverrideMaps: &empty}).EffectiveMaps(channels); len(got) != 0 {
		t.Fatalf("expected empty override to win, got %v", got)
	}
}

func TestHotbackupFallsBackToPlayer(t *testing.T) {
	model := testsupport.NewTopology(t)
	if got := model.Databases.HotbackupDatabase(); got != model.Databases.Player {
		t.Fatalf("expected player descriptor, got %+v", got)
	}
	backup := topology.Database{IP: "backup"}
	model.Databases.Hotbackup = &backup
	if got := model.Databases.HotbackupDatabase(); got.IP != "backup" {
		t.Fatalf("expected hotbackup descriptor, got %+v", got)
	}
}

func TestServerSlugLowercases(t *testing.T) {
	model := testsupport.NewTopology(t, testsupport.WithServerName("MyServer"))
	if got := model.ServerSlug(); got != "myserver" {
		t.Fatalf("ServerSlug() = %q", got)
	}
}
