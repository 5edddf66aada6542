package bot

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"warden/internal/router"
)

func (bot *Bot) handlerReady(session *discordgo.Session, ready *discordgo.Ready) {
	_, err := session.ApplicationCommandBulkOverwrite(ready.User.ID, "", bot.Router.ApplicationCommands())
	if err != nil {
		bot.Log.WithError(err).Error("Syncing slash commands")
	} else {
		bot.Log.WithField("user", ready.User.String()).Info("Slash commands synced")
	}

	err = session.UpdateWatchStatus(0, "the server")
	if err != nil {
		bot.Log.WithError(err).Error("Setting presence")
	}
}

func (bot *Bot) handlerGuildCreate(_ *discordgo.Session, guildCreate *discordgo.GuildCreate) {
	for _, m := range bot.Modules {
		m.Configure(&bot.Configuration, guildCreate.Guild)
	}
}

func (bot *Bot) handlerInteractionCreate(session *discordgo.Session, interactionCreate *discordgo.InteractionCreate) {
	if interactionCreate.Type != discordgo.InteractionApplicationCommand {
		return
	}

	// guild commands only; member is nil in direct messages
	if interactionCreate.Member == nil {
		return
	}

	err := bot.Router.Dispatch(session, interactionCreate)
	if err != nil {
		bot.Log.WithError(err).Error("Dispatching interaction")
	}
}

func (bot *Bot) middlewareReply() router.MiddlewareFunc {
	return func(handler router.HandlerFunc) router.HandlerFunc {
		return func(ctx *router.Context) error {
			origerr := handler(ctx)
			if origerr == nil {
				return nil
			}

			var rejection *router.Rejection

			if errors.As(origerr, &rejection) {
				return ctx.ReplyEphemeral(rejection.Message)
			}

			bot.Log.WithError(origerr).
				WithField("command", ctx.Command.Name).
				WithField("guild", ctx.GuildID()).
				Error("Executing command")

			err := ctx.ReplyEphemeral("❌ Action failed.")
			if err != nil {
				bot.Log.WithError(err).Error("Replying with error status")
			}

			return nil
		}
	}
}
