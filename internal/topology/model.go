package topology

// Model is the topology description. It is read once per run and never
// mutated afterwards.
type Model struct {
	ServerName   string       `json:"server_name"`
	Auth         Auth         `json:"auth"`
	Channels     Channels     `json:"channels"`
	Common       Common       `json:"common"`
	DB           DB           `json:"db"`
	AdminpageIPs AdminpageIPs `json:"adminpage_ips"`
	Databases    Databases    `json:"databases"`
}

// AdminpageIPs lists the hosts allowed to reach the in-game admin page.
type AdminpageIPs struct {
	IP       string `json:"adminpage_ip"`
	IP1      string `json:"adminpage_ip1"`
	IP2      string `json:"adminpage_ip2"`
	IP3      string `json:"adminpage_ip3"`
	Password string `json:"password"`
}

// Auth describes the authentication gateway instances.
type Auth struct {
	AuthServer     string `json:"auth_server"`
	TrafficProfile int64  `json:"traffic_profile"`
	Ports          []Port `json:"ports"`
}

// Port is a client port paired with its peer-to-peer port.
type Port struct {
	Port    int64 `json:"port"`
	P2PPort int64 `json:"p2p_port"`
}

// Channels holds the shared map groups and the per-channel settings.
type Channels struct {
	CommonMaps [][]int64 `json:"common_maps"`
	Settings   []Setting `json:"settings"`
}

// Setting describes one channel.
type Setting struct {
	Rename       *string    `json:"rename,omitempty"`
	ChannelID    int64      `json:"channel_id"`
	Port         int64      `json:"port"`
	P2PPort      int64      `json:"p2p_port"`
	OverrideMaps *[][]int64 `json:"override_maps,omitempty"`
}

// Common holds game-server settings shared by every channel part.
type Common struct {
	TablePostfix               string `json:"table_postfix"`
	PassesPerSec               int64  `json:"passes_per_sec"`
	DBIP                       string `json:"db_ip"`
	DBPort                     int64  `json:"db_port"`
	SaveEventSecondCycle       int64  `json:"save_event_second_cycle"`
	PingEventSecondCycle       int64  `json:"ping_event_second_cycle"`
	ViewRange                  int64  `json:"view_range"`
	LocaleService              string `json:"locale_service"`
	SpeedhackLimitCount        int64  `json:"speedhack_limit_count"`
	SpeedhackLimitBonus        int64  `json:"speedhack_limit_bonus"`
	PKProtectLevel             int64  `json:"pk_protect_level"`
	MallURL                    string `json:"mall_url"`
	TrafficProfile             int64  `json:"traffic_profile"`
	TestServer                 int64  `json:"test_server"`
	MaxLevel                   int64  `json:"max_level"`
	DisableItemBonusChangeTime int64  `json:"disable_item_bonus_change_time"`
}

// Databases groups the SQL connection descriptors. Hotbackup is optional;
// when absent the player descriptor stands in for it.
type Databases struct {
	Player    Database  `json:"player"`
	Common    Database  `json:"common"`
	Log       Database  `json:"log"`
	Account   Database  `json:"account"`
	Hotbackup *Database `json:"hotbackup,omitempty"`
}

// Database is a single SQL connection descriptor.
type Database struct {
	IP       string `json:"ip"`
	Port     string `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password"`
	Sock     string `json:"sock"`
}

// DB holds settings for the database coordinator role.
type DB struct {
	BindPort               int64       `json:"bind_port"`
	DBSleepMsec            int64       `json:"db_sleep_msec"`
	ClientHeartFPS         int64       `json:"client_heart_fps"`
	HashPlayerLifeSec      int64       `json:"hash_player_life_sec"`
	PlayerDeleteLevelLimit int64       `json:"player_delete_level_limit"`
	PlayerIDStart          int64       `json:"player_id_start"`
	ItemIDRange            ItemIDRange `json:"item_id_range"`
	TestServer             int64       `json:"test_server"`
}

// ItemIDRange bounds the item ids handed out by the db role.
type ItemIDRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}
