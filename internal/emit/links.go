package emit

import (
	"srvmaker/internal/expand"
	"srvmaker/internal/topology"
)

var (
	channelShareLinks = []string{"data", "package", "CMD", "locale"}
	authShareLinks    = []string{"data", "locale"}
	dbShareLinks      = []string{
		"data",
		"package",
		"locale",
		"item_proto.txt",
		"item_names.txt",
		"mob_proto.txt",
		"mob_names.txt",
	}
)

// link names an entry under the shared-resource root and the link created
// for it inside a unit directory.
type link struct {
	target string
	name   string
}

// linksFor returns the links of unit in creation order: the shared set
// first, then the role executable or data directory.
func linksFor(unit expand.Unit, model *topology.Model) []link {
	var shared []string
	var last link
	switch unit.Kind {
	case expand.KindAuth:
		shared = authShareLinks
		last = link{target: "game_" + model.ServerSlug(), name: unit.Executable}
	case expand.KindChannelPart:
		shared = channelShareLinks
		last = link{target: "game_" + model.ServerSlug(), name: unit.Executable}
	case expand.KindDB:
		shared = dbShareLinks
		last = link{target: "db_" + model.ServerSlug(), name: "db_" + model.ServerSlug()}
	}

	links := make([]link, 0, len(shared)+1)
	for _, name := range shared {
		links = append(links, link{target: name, name: name})
	}
	return append(links, last)
}

// subdirsFor returns the directories created inside a unit directory.
func subdirsFor(kind expand.Kind) []string {
	switch kind {
	case expand.KindAuth:
		return []string{"log"}
	case expand.KindChannelPart:
		return []string{"log", "mark"}
	default:
		return nil
	}
}

// configFileFor returns the name of the rendered config file.
func configFileFor(kind expand.Kind) string {
	if kind == expand.KindDB {
		return "conf.txt"
	}
	return "CONFIG"
}

// SharedTargets returns every entry under the shared-resource root that the
// emitted links of model point at, deduplicated in first-use order.
func SharedTargets(model *topology.Model) []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(names ...string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	add(channelShareLinks...)
	add(authShareLinks...)
	add(dbShareLinks...)
	add("game_"+model.ServerSlug(), "db_"+model.ServerSlug())
	return out
}
