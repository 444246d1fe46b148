package expand

import (
	"path/filepath"
	"strconv"

	"srvmaker/internal/topology"
)

// Expand derives the emission plan for model.
func Expand(model *topology.Model) Plan {
	var plan Plan

	plan.Auth = make([]Unit, 0, len(model.Auth.Ports))
	for i, port := range model.Auth.Ports {
		index := i + 1
		plan.Auth = append(plan.Auth, Unit{
			Kind:       KindAuth,
			Dir:        filepath.Join(AuthDir, itoa(index)),
			Executable: "auth" + itoa(index),
			Index:      index,
			Port:       port.Port,
			P2PPort:    port.P2PPort,
		})
	}

	plan.Channels = make([]ChannelGroup, 0, len(model.Channels.Settings))
	for _, setting := range model.Channels.Settings {
		naming := setting.Naming()
		maps := setting.EffectiveMaps(model.Channels)
		group := ChannelGroup{Dir: naming.Dir(), Parts: make([]Unit, 0, len(maps))}
		for p := 1; p <= len(maps); p++ {
			group.Parts = append(group.Parts, Unit{
				Kind:       KindChannelPart,
				Dir:        partDir(group.Dir, p),
				Executable: naming.Executable(p),
				Index:      p,
				Port:       setting.Port,
				P2PPort:    setting.P2PPort,
				ChannelID:  setting.ChannelID,
				Naming:     naming,
				Maps:       maps[p-1],
			})
		}
		plan.Channels = append(plan.Channels, group)
	}

	plan.DB = Unit{
		Kind:       KindDB,
		Dir:        DBDir,
		Executable: "db_" + model.ServerSlug(),
	}
	return plan
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
