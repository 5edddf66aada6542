// Package guildconfig provides commands for configuring per-guild
// moderation roles
package guildconfig

import (
	"github.com/bwmarrin/discordgo"

	"warden/internal/bot"
	"warden/internal/router"
)

// New provides module instance
func New() bot.Module {
	return &module{}
}

type module struct {
	config *bot.Configuration
}

func (mod *module) Initialize(config *bot.Configuration) error {
	mod.config = config

	group := config.Router.Group("admin").SetDescription("administration")

	group.On("setmodrole", "Set the Moderator role for this server", router.TierAdministrator, mod.commandSetModRole).
		WithOptions(&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "The role to designate as Moderator",
			Required:    true,
		})

	group.On("setadminrole", "Set the Admin role for this server", router.TierAdministrator, mod.commandSetAdminRole).
		WithOptions(&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "The role to designate as Admin",
			Required:    true,
		})

	return nil
}

func (mod *module) Configure(config *bot.Configuration, guild *discordgo.Guild) {

}

func (mod *module) Shutdown(config *bot.Configuration) {

}

func (mod *module) commandSetModRole(ctx *router.Context) error {
	role := ctx.Role("role")
	if role == nil {
		return router.Reject("❌ Role not found.")
	}

	err := mod.config.Roles.SetModeratorRole(ctx.GuildID(), role.ID)
	if err != nil {
		return err
	}

	return ctx.ReplyEphemeral("✅ **Moderator** role set to " + role.Mention() + ".")
}

func (mod *module) commandSetAdminRole(ctx *router.Context) error {
	role := ctx.Role("role")
	if role == nil {
		return router.Reject("❌ Role not found.")
	}

	err := mod.config.Roles.SetAdministratorRole(ctx.GuildID(), role.ID)
	if err != nil {
		return err
	}

	return ctx.ReplyEphemeral("✅ **Admin** role set to " + role.Mention() + ".")
}
