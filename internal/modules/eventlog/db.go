package eventlog

import (
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Postgres driver

	"warden/internal/bot"
)

type dbcontext struct {
	connect *sqlx.DB
	save    *sqlx.Stmt
}

type module struct {
	config *bot.Configuration
	dbmap  map[string]*dbcontext
	lock   *sync.RWMutex
}

func (mod *module) initDB() {
	mod.dbmap = make(map[string]*dbcontext)
	mod.lock = &sync.RWMutex{}
}

func (mod *module) Configure(config *bot.Configuration, guild *discordgo.Guild) {
	mod.lock.Lock()
	defer mod.lock.Unlock()

	if _, ok := mod.dbmap[guild.ID]; ok {
		return
	}

	for _, s := range config.Config.Servers {
		if s.GuildID != guild.ID || s.AuditDB == "" {
			continue
		}

		db, err := sqlx.Open("postgres", s.AuditDB)
		if err != nil {
			config.Log.Errorln("opening database", err)
			continue
		}

		saveStmt, err := db.Preparex(`
insert into audit_event(
  guild_id,
  kind,
  author_id,
  channel_id,
  content,
  time
) values (
  $1,
  $2,
  $3,
  $4,
  $5,
  now()
)
`)
		if err != nil {
			config.Log.Errorln("preparing statement", err)
			continue
		}

		mod.dbmap[guild.ID] = &dbcontext{
			connect: db,
			save:    saveStmt,
		}
	}
}

func (mod *module) Shutdown(config *bot.Configuration) {
	mod.lock.Lock()
	defer mod.lock.Unlock()

	for _, d := range mod.dbmap {
		_ = d.connect.Close()
	}
}

func (mod *module) saveEvent(guildID, kind, authorID, channelID, content string) {
	mod.lock.RLock()
	defer mod.lock.RUnlock()

	db, ok := mod.dbmap[guildID]
	if !ok {
		return
	}

	if db.save != nil {
		_, err := db.save.Exec(guildID, kind, authorID, channelID, content)
		if err != nil {
			mod.config.Log.Errorln("Saving audit event", err)
		}
	}
}
