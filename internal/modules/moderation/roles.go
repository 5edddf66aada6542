package moderation

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"warden/internal/modembed"
	"warden/internal/router"
)

func (mod *module) commandRole(ctx *router.Context) error {
	target, err := mod.targetMember(ctx)
	if err != nil {
		return err
	}

	role := ctx.Role("role")
	if role == nil {
		return router.Reject("❌ Role not found.")
	}

	action := ctx.StringDefault("action", "add")
	actor := ctx.Member()

	// platform administrators bypass the rank check for role assignment
	platformAdmin := actor.Permissions&discordgo.PermissionAdministrator != 0

	if !platformAdmin {
		roles, err := ctx.Session.GuildRoles(ctx.GuildID())
		if err != nil {
			return err
		}

		if rolePosition(roles, role.ID) >= topRolePosition(roles, actor) {
			return router.Reject("❌ You cannot assign a role equal to or higher than your own.")
		}
	}

	var verb string

	if action == "add" {
		verb = "Added"
		err = ctx.Session.GuildMemberRoleAdd(ctx.GuildID(), target.User.ID, role.ID)
	} else {
		verb = "Removed"
		err = ctx.Session.GuildMemberRoleRemove(ctx.GuildID(), target.User.ID, role.ID)
	}

	if err != nil {
		return err
	}

	embed := modembed.New("🎭 Role "+verb, modembed.ColorBlurple, []modembed.Field{
		{Label: "Member", Value: target.Mention(), Inline: true},
		{Label: "Role", Value: role.Mention(), Inline: true},
		{Label: "Action", Value: verb, Inline: true},
		{Label: "Moderator", Value: actor.Mention(), Inline: true},
	})

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbed(embed)
}

func (mod *module) commandAnnounce(ctx *router.Context) error {
	channel := ctx.Channel("channel")
	if channel == nil {
		return router.Reject("❌ Channel not found.")
	}

	title := ctx.String("title")
	message := ctx.String("message")
	actor := ctx.Member()

	colour := modembed.ColorAnnouncement

	if raw := ctx.String("color"); raw != "" {
		var err error

		colour, err = modembed.ParseColor(raw)
		if err != nil {
			return router.Reject("❌ Invalid colour, use hex like e8312a.")
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📢 " + title,
		Description: message,
		Color:       colour,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Announced by " + actor.User.String(),
		},
	}

	var content string

	if ping := ctx.Role("ping"); ping != nil {
		content = ping.Mention()
	}

	_, err := ctx.Session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content: content,
		Embed:   embed,
	})
	if err != nil {
		return err
	}

	return ctx.ReplyEphemeral("✅ Announcement sent to " + channelMention(channel.ID) + ".")
}
