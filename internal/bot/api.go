// Package bot provides main bot implementation
package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"warden/internal/audit"
	"warden/internal/config"
	"warden/internal/router"
	"warden/internal/store"
)

// Options provide configuration options for bot
type Options struct {
	Discord  *discordgo.Session
	Config   *config.Root
	Log      *logrus.Logger
	Roles    *store.Config
	Warnings *store.Warnings
	Audit    *audit.Emitter
	Modules  []Module
}

// Configuration stores configuration for bot
type Configuration struct {
	Discord  *discordgo.Session
	Config   *config.Root
	Log      *logrus.Logger
	Router   *router.Router
	Roles    *store.Config
	Warnings *store.Warnings
	Audit    *audit.Emitter
	Modules  []Module
}

// Module interface encapsulates methods for distinct functionality
type Module interface {
	Initialize(bot *Configuration) error
	Configure(bot *Configuration, guild *discordgo.Guild)
	Shutdown(bot *Configuration)
}

// NewBot provides new instance of bot
func NewBot(options Options) (*Bot, error) {
	if options.Log == nil {
		options.Log = logrus.New()
	}

	bot := &Bot{
		Configuration: Configuration{
			Discord:  options.Discord,
			Config:   options.Config,
			Log:      options.Log,
			Router:   router.NewRouter(),
			Roles:    options.Roles,
			Warnings: options.Warnings,
			Audit:    options.Audit,
			Modules:  options.Modules,
		},
		stop: make(chan struct{}),
	}

	bot.Router.PrependMiddleware(bot.middlewareReply())

	for _, m := range bot.Modules {
		err := m.Initialize(&bot.Configuration)
		if err != nil {
			return nil, err
		}
	}

	bot.Discord.AddHandler(bot.handlerReady)
	bot.Discord.AddHandler(bot.handlerGuildCreate)
	bot.Discord.AddHandler(bot.handlerInteractionCreate)

	return bot, nil
}
