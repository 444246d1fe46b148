package config

const (
	defaultSettingsPath  = "~/.config/srvmaker/settings.toml"
	defaultSharedDir     = "share"
	defaultTopologyFile  = "config.json"
	defaultDeployRoot    = "/home"
	defaultScriptName    = "start.sh"
	defaultSettleSeconds = 3
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SharedDir:    defaultSharedDir,
			TopologyFile: defaultTopologyFile,
			DeployRoot:   defaultDeployRoot,
		},
		Script: Script{
			FileName:      defaultScriptName,
			SettleSeconds: defaultSettleSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
