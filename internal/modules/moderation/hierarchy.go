package moderation

import (
	"github.com/bwmarrin/discordgo"

	"warden/internal/router"
)

// topRolePosition returns the position of the member's highest-ranked role.
// Members with no roles rank at the @everyone position, 0.
func topRolePosition(roles []*discordgo.Role, member *discordgo.Member) (top int) {
	for _, id := range member.Roles {
		for _, r := range roles {
			if r.ID == id && r.Position > top {
				top = r.Position
			}
		}
	}

	return
}

// rolePosition returns the position of given role, 0 if unknown
func rolePosition(roles []*discordgo.Role, roleID string) int {
	for _, r := range roles {
		if r.ID == roleID {
			return r.Position
		}
	}

	return 0
}

// outranks reports whether the actor's top role is strictly above the
// target's; equal rank loses.
func outranks(roles []*discordgo.Role, actor, target *discordgo.Member) bool {
	return topRolePosition(roles, actor) > topRolePosition(roles, target)
}

// requireOutranks fetches live role ranks and rejects when the actor does not
// outrank the target. Ranks are never cached; role updates take effect
// immediately.
func (mod *module) requireOutranks(ctx *router.Context, target *discordgo.Member, rejection string) error {
	roles, err := ctx.Session.GuildRoles(ctx.GuildID())
	if err != nil {
		return err
	}

	if !outranks(roles, ctx.Member(), target) {
		return router.Reject(rejection)
	}

	return nil
}
