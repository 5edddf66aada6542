// Package auth provides tier-based authorization middleware for bot commands
package auth

import (
	"github.com/bwmarrin/discordgo"

	"warden/internal/bot"
	"warden/internal/router"
)

const (
	rejectModerator     = "❌ You need a **Moderator** or **Admin** role to use this command."
	rejectAdministrator = "❌ You need an **Admin** role to use this command."
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

	config.Router.AppendMiddleware(mod.middlewareTier)

	return nil
}

func (mod *module) Configure(config *bot.Configuration, guild *discordgo.Guild) {

}

func (mod *module) Shutdown(config *bot.Configuration) {

}

// Allowed decides whether a member passes given tier. Pure function of the
// platform administrator flag, the member's role set and the configured role
// IDs; empty configured IDs mean unconfigured.
func Allowed(tier router.Tier, platformAdmin bool, roles []string, modRoleID, adminRoleID string) bool {
	if tier == router.TierAnyone || platformAdmin {
		return true
	}

	for _, r := range roles {
		if adminRoleID != "" && r == adminRoleID {
			return true
		}

		if tier == router.TierModerator && modRoleID != "" && r == modRoleID {
			return true
		}
	}

	return false
}

func (mod *module) middlewareTier(handler router.HandlerFunc) router.HandlerFunc {
	return func(ctx *router.Context) error {
		tier := ctx.Command.Tier
		if tier == router.TierAnyone {
			return handler(ctx)
		}

		member := ctx.Member()

		platformAdmin := member.Permissions&discordgo.PermissionAdministrator != 0

		modRoleID, _ := mod.config.Roles.ModeratorRole(ctx.GuildID())
		adminRoleID, _ := mod.config.Roles.AdministratorRole(ctx.GuildID())

		if Allowed(tier, platformAdmin, member.Roles, modRoleID, adminRoleID) {
			return handler(ctx)
		}

		if tier == router.TierAdministrator {
			return router.Reject(rejectAdministrator)
		}

		return router.Reject(rejectModerator)
	}
}
