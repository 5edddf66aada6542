// Package moderation provides member and channel moderation commands
package moderation

import (
	"github.com/bwmarrin/discordgo"

	"warden/internal/bot"
	"warden/internal/router"
)

const defaultReason = "No reason provided"

// New provides module instance
func New() bot.Module {
	return &module{}
}

type module struct {
	config *bot.Configuration
}

func fp(v float64) *float64 {
	return &v
}

func memberOption(desc string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "member",
		Description: desc,
		Required:    true,
	}
}

func reasonOption(desc string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "reason",
		Description: desc,
	}
}

func channelOption(desc string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionChannel,
		Name:        "channel",
		Description: desc,
		Required:    required,
		ChannelTypes: []discordgo.ChannelType{
			discordgo.ChannelTypeGuildText,
		},
	}
}

func (mod *module) Initialize(config *bot.Configuration) error {
	mod.config = config

	admin := config.Router.Group("admin").SetDescription("administration")

	admin.On("ban", "Ban a member from the server", router.TierAdministrator, mod.commandBan).
		WithOptions(
			memberOption("The member to ban"),
			reasonOption("Reason for the ban"),
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "delete_days",
				Description: "Days of messages to delete (0-7)",
				MinValue:    fp(0),
				MaxValue:    7,
			},
		)

	admin.On("unban", "Unban a user by their ID", router.TierAdministrator, mod.commandUnban).
		WithOptions(
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "user_id",
				Description: "The user's ID to unban",
				Required:    true,
			},
			reasonOption("Reason for the unban"),
		)

	admin.On("clearwarnings", "Clear all warnings for a member", router.TierAdministrator, mod.commandClearWarnings).
		WithOptions(memberOption("The member whose warnings to clear"))

	admin.On("role", "Add or remove a role from a member", router.TierAdministrator, mod.commandRole).
		WithOptions(
			memberOption("The member to modify"),
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "The role to add or remove",
				Required:    true,
			},
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "action",
				Description: "Add or remove",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "add", Value: "add"},
					{Name: "remove", Value: "remove"},
				},
			},
		)

	admin.On("announce", "Send a formatted announcement to a channel", router.TierAdministrator, mod.commandAnnounce).
		WithOptions(
			channelOption("Channel to send the announcement to", true),
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Announcement title",
				Required:    true,
			},
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "Announcement body",
				Required:    true,
			},
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "ping",
				Description: "Role to ping (optional)",
			},
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "color",
				Description: "Embed colour as hex, like e8312a (optional)",
			},
		)

	moder := config.Router.Group("mod").SetDescription("moderation")

	moder.On("kick", "Kick a member from the server", router.TierModerator, mod.commandKick).
		WithOptions(memberOption("The member to kick"), reasonOption("Reason for the kick"))

	moder.On("timeout", "Timeout (mute) a member", router.TierModerator, mod.commandTimeout).
		WithOptions(
			memberOption("The member to timeout"),
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "minutes",
				Description: "Duration in minutes (max 40320 = 28 days)",
				MinValue:    fp(1),
				MaxValue:    40320,
			},
			reasonOption("Reason for the timeout"),
		)

	moder.On("untimeout", "Remove a timeout from a member", router.TierModerator, mod.commandUntimeout).
		WithOptions(memberOption("The member to untimeout"), reasonOption("Reason"))

	moder.On("warn", "Warn a member and log it", router.TierModerator, mod.commandWarn).
		WithOptions(memberOption("The member to warn"), reasonOption("Reason for the warning"))

	moder.On("warnings", "View all warnings for a member", router.TierModerator, mod.commandWarnings).
		WithOptions(memberOption("The member to check"))

	moder.On("purge", "Bulk-delete messages in a channel", router.TierModerator, mod.commandPurge).
		WithOptions(
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Number of messages to delete (1-100)",
				MinValue:    fp(1),
				MaxValue:    100,
			},
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "member",
				Description: "Only delete messages from this member (optional)",
			},
		)

	moder.On("slowmode", "Set slowmode for a channel", router.TierModerator, mod.commandSlowmode).
		WithOptions(
			&discordgo.ApplicationCommandOption{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "seconds",
				Description: "Slowmode delay in seconds (0 to disable, max 21600)",
				MinValue:    fp(0),
				MaxValue:    21600,
			},
			channelOption("Channel to apply slowmode to (defaults to current)", false),
		)

	moder.On("lock", "Lock a channel so members can't send messages", router.TierModerator, mod.commandLock).
		WithOptions(channelOption("Channel to lock (defaults to current)", false), reasonOption("Reason for locking"))

	moder.On("unlock", "Unlock a previously locked channel", router.TierModerator, mod.commandUnlock).
		WithOptions(channelOption("Channel to unlock (defaults to current)", false), reasonOption("Reason for unlocking"))

	return nil
}

func (mod *module) Configure(config *bot.Configuration, guild *discordgo.Guild) {

}

func (mod *module) Shutdown(config *bot.Configuration) {

}
