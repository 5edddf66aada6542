package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/bwmarrin/discordgo"
	redis "github.com/go-redis/redis/v7"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"warden/internal/audit"
	"warden/internal/bot"
	"warden/internal/config"
	"warden/internal/modules/auth"
	"warden/internal/modules/eventlog"
	"warden/internal/modules/guildconfig"
	"warden/internal/modules/info"
	"warden/internal/modules/moderation"
	"warden/internal/store"
	"warden/internal/web"
)

type options struct {
	Config string `short:"c" long:"config" description:"Configuration file" default:"config.yml"`
}

func readConfig(log *logrus.Logger, configPath string) *config.Root {
	configFile, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0644)
	if err != nil {
		log.Fatal(err)
	}

	c, err := config.Read(configFile)
	if err != nil {
		log.Fatal(err)
	}

	err = configFile.Close()
	if err != nil {
		log.Fatal(err)
	}

	return c
}

func makeBackends(configRoot *config.Root) (roles, warnings store.Backend) {
	if configRoot.Private.Redis.Address != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     configRoot.Private.Redis.Address,
			Password: configRoot.Private.Redis.Password,
			DB:       configRoot.Private.Redis.DB,
		})

		return store.NewRedis(client, "warden.config"), store.NewRedis(client, "warden.warnings")
	}

	data := configRoot.Private.Data
	if data == "" {
		data = "."
	}

	return store.NewFile(filepath.Join(data, "config.json")), store.NewFile(filepath.Join(data, "warnings.json"))
}

func main() {
	log := logrus.New()

	opts := &options{}

	_, err := flags.Parse(opts)
	if err != nil {
		os.Exit(1)
	}

	_ = godotenv.Load()

	configRoot := readConfig(log, opts.Config)

	configRoot.OverlayEnv()

	if configRoot.Private.Token == "" {
		log.Fatal("Missing bot token, refusing to start")
	}

	dg, err := discordgo.New("Bot " + configRoot.Private.Token)
	if err != nil {
		log.Fatal(err)
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildBans |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	// cached copies supply the before-content of edited and deleted messages
	dg.State.MaxMessageCount = 1000

	rolesBackend, warningsBackend := makeBackends(configRoot)

	emitter := audit.New(dg, log, configRoot.Private.LogChannelID)

	for _, s := range configRoot.Servers {
		if s.LogChannelID != "" {
			emitter.SetChannel(s.GuildID, s.LogChannelID)
		}
	}

	if configRoot.Private.Listen != "" {
		server := web.NewServer(configRoot.Private.Listen, log)
		server.Start()

		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			_ = server.Shutdown(ctx)
		}()
	}

	b, err := bot.NewBot(bot.Options{
		Discord:  dg,
		Config:   configRoot,
		Log:      log,
		Roles:    store.NewConfig(rolesBackend),
		Warnings: store.NewWarnings(warningsBackend),
		Audit:    emitter,
		Modules: []bot.Module{
			auth.New(),
			guildconfig.New(),
			moderation.New(),
			info.New(),
			eventlog.New(),
		},
	})

	if err != nil {
		log.Fatal(err)
	}

	err = b.Serve()
	if err != nil {
		log.Fatal(err)
	}
}
