package emit

import (
	"strconv"
	"strings"

	"srvmaker/internal/expand"
	"srvmaker/internal/topology"
)

const (
	backupLimitSec = 3600
	welcomeMessage = "DB Server has been started"
)

// configWriter renders KEY<sep>value lines.
type configWriter struct {
	b   strings.Builder
	sep string
}

func (w *configWriter) str(key, value string) {
	w.b.WriteString(key)
	w.b.WriteString(w.sep)
	w.b.WriteString(value)
	w.b.WriteByte('\n')
}

func (w *configWriter) num(key string, value int64) {
	w.str(key, strconv.FormatInt(value, 10))
}

func (w *configWriter) quoted(key, value string) {
	w.str(key, `"`+value+`"`)
}

func (w *configWriter) String() string {
	return w.b.String()
}

// gameSQL renders a descriptor the way game processes read it.
func gameSQL(db topology.Database) string {
	return strings.Join([]string{db.IP, db.User, db.Password, db.Database, db.Port, db.Sock}, " ")
}

// dbSQL renders a descriptor the way the db role reads it.
func dbSQL(db topology.Database) string {
	return strings.Join([]string{db.IP, db.Database, db.User, db.Password, db.Port, db.Sock}, " ")
}

// mapAllow renders map ids with a single leading space before each id.
func mapAllow(ids []int64) string {
	var b strings.Builder
	for _, id := range ids {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return b.String()
}

func writeAdminpage(w *configWriter, ips topology.AdminpageIPs) {
	w.str("ADMINPAGE_PASSWORD", ips.Password)
	w.str("adminpage_ip", ips.IP)
	w.str("adminpage_ip1", ips.IP1)
	w.str("adminpage_ip2", ips.IP2)
	w.str("adminpage_ip3", ips.IP3)
}

// Render returns the config file content for unit.
func Render(unit expand.Unit, model *topology.Model) string {
	switch unit.Kind {
	case expand.KindAuth:
		return renderAuth(unit, model)
	case expand.KindChannelPart:
		return renderChannelPart(unit, model)
	default:
		return renderDB(model)
	}
}

func renderAuth(unit expand.Unit, model *topology.Model) string {
	w := &configWriter{sep: ": "}
	w.num("CHANNEL", int64(unit.Index))
	w.str("HOSTNAME", "auth"+strconv.Itoa(unit.Index))
	w.num("PORT", unit.Port)
	w.num("P2P_PORT", unit.P2PPort)
	w.str("DB_ADDR", model.Common.DBIP)
	w.num("DB_PORT", model.Common.DBPort)
	// Auth reads accounts through its PLAYER_SQL handle.
	w.str("PLAYER_SQL", gameSQL(model.Databases.Account))
	w.str("COMMON_SQL", gameSQL(model.Databases.Common))
	w.str("LOG_SQL", gameSQL(model.Databases.Log))
	w.str("TABLE_POSTFIX", model.Common.TablePostfix)
	w.num("PASSES_PER_SEC", model.Common.PassesPerSec)
	w.num("PING_EVENT_SECOND_CYCLE", model.Common.PingEventSecondCycle)
	writeAdminpage(w, model.AdminpageIPs)
	w.str("AUTH_SERVER", model.Auth.AuthServer)
	w.num("TRAFFIC_PROFILE", model.Auth.TrafficProfile)
	return w.String()
}

func renderChannelPart(unit expand.Unit, model *topology.Model) string {
	common := model.Common
	w := &configWriter{sep: ": "}
	w.num("CHANNEL", unit.ChannelID)
	w.str("HOSTNAME", "part"+strconv.Itoa(unit.Index))
	w.num("PORT", unit.Port)
	w.num("P2P_PORT", unit.P2PPort)
	w.str("DB_ADDR", common.DBIP)
	w.num("DB_PORT", common.DBPort)
	w.str("PLAYER_SQL", gameSQL(model.Databases.Player))
	w.str("COMMON_SQL", gameSQL(model.Databases.Common))
	w.str("LOG_SQL", gameSQL(model.Databases.Log))
	w.str("TABLE_POSTFIX", common.TablePostfix)
	w.str("MAP_ALLOW", mapAllow(unit.Maps))
	w.num("PASSES_PER_SEC", common.PassesPerSec)
	w.num("SAVE_EVENT_SECOND_CYCLE", common.SaveEventSecondCycle)
	w.num("PING_EVENT_SECOND_CYCLE", common.PingEventSecondCycle)
	w.num("VIEW_RANGE", common.ViewRange)
	w.num("CHECK_MULTIHACK", 0)
	w.str("LOCALE_SERVICE", common.LocaleService)
	writeAdminpage(w, model.AdminpageIPs)
	w.num("SPEEDHACK_LIMIT_COUNT", common.SpeedhackLimitCount)
	w.num("SPEEDHACK_LIMIT_BONUS", common.SpeedhackLimitBonus)
	w.num("PK_PROTECT_LEVEL", common.PKProtectLevel)
	w.str("MALL_URL", common.MallURL)
	w.num("TRAFFIC_PROFILE", common.TrafficProfile)
	w.num("TEST_SERVER", common.TestServer)
	w.num("MAX_LEVEL", common.MaxLevel)
	w.num("g_bDisableItemBonusChangeTime", common.DisableItemBonusChangeTime)
	return w.String()
}

func renderDB(model *topology.Model) string {
	db := model.DB
	dbs := model.Databases
	w := &configWriter{sep: " = "}
	w.num("BIND_PORT", db.BindPort)
	w.quoted("SQL_ACCOUNT", dbSQL(dbs.Account))
	w.quoted("SQL_COMMON", dbSQL(dbs.Common))
	w.quoted("SQL_HOTBACKUP", dbSQL(dbs.HotbackupDatabase()))
	w.quoted("SQL_PLAYER", dbSQL(dbs.Player))
	w.quoted("TABLE_POSTFIX", model.Common.TablePostfix)
	w.num("DB_SLEEP_MSEC", db.DBSleepMsec)
	w.num("CLIENT_HEART_FPS", db.ClientHeartFPS)
	w.num("HASH_PLAYER_LIFE_SEC", db.HashPlayerLifeSec)
	w.num("PLAYER_DELETE_LEVEL_LIMIT", db.PlayerDeleteLevelLimit)
	w.num("PLAYER_ID_START", db.PlayerIDStart)
	w.num("BACKUP_LIMIT_SEC", backupLimitSec)
	w.quoted("WELCOME_MSG", welcomeMessage)
	w.str("ITEM_ID_RANGE", strconv.FormatInt(db.ItemIDRange.Start, 10)+" "+strconv.FormatInt(db.ItemIDRange.End, 10))
	w.num("TEST_SERVER", db.TestServer)
	return w.String()
}
