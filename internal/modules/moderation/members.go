package moderation

import (
	"fmt"
	"time"

	"warden/internal/config"
	"warden/internal/modembed"
	"warden/internal/router"
)

func (mod *module) commandBan(ctx *router.Context) error {
	target, err := mod.targetMember(ctx)
	if err != nil {
		return err
	}

	reason := ctx.StringDefault("reason", defaultReason)
	deleteDays := int(ctx.Int("delete_days", 0))
	actor := ctx.Member()

	err = mod.requireOutranks(ctx, target, "❌ You cannot ban someone with an equal or higher role.")
	if err != nil {
		return err
	}

	mod.dm(ctx.Session, target.User.ID, modembed.New(
		"🔨 You have been banned from "+mod.guildName(ctx), modembed.ColorRed, []modembed.Field{
			{Label: "Reason", Value: reason, Inline: true},
			{Label: "Moderator", Value: actor.User.String(), Inline: true},
		}))

	err = ctx.Session.GuildBanCreateWithReason(ctx.GuildID(), target.User.ID, actor.User.String()+": "+reason, deleteDays)
	if err != nil {
		return err
	}

	embed := modembed.New("🔨 Member Banned", modembed.ColorRed, []modembed.Field{
		{Label: "Member", Value: memberLabel(target), Inline: true},
		{Label: "Reason", Value: reason, Inline: true},
		{Label: "Moderator", Value: actor.Mention(), Inline: true},
	})

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbed(embed)
}

func (mod *module) commandUnban(ctx *router.Context) error {
	userID := ctx.String("user_id")
	if !config.Digits(userID) {
		return router.Reject("❌ Invalid user ID.")
	}

	reason := ctx.StringDefault("reason", defaultReason)
	actor := ctx.Member()

	user, err := ctx.Session.User(userID)
	if err != nil {
		if restNotFound(err) {
			return router.Reject("❌ User not found or not banned.")
		}

		return err
	}

	err = ctx.Session.GuildBanDelete(ctx.GuildID(), userID)
	if err != nil {
		if restNotFound(err) {
			return router.Reject("❌ User not found or not banned.")
		}

		return err
	}

	embed := modembed.New("✅ Member Unbanned", modembed.ColorGreen, []modembed.Field{
		{Label: "User", Value: userLabel(user), Inline: true},
		{Label: "Reason", Value: reason, Inline: true},
		{Label: "Moderator", Value: actor.Mention(), Inline: true},
	})

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbed(embed)
}

func (mod *module) commandKick(ctx *router.Context) error {
	target, err := mod.targetMember(ctx)
	if err != nil {
		return err
	}

	reason := ctx.StringDefault("reason", defaultReason)
	actor := ctx.Member()

	err = mod.requireOutranks(ctx, target, "❌ You cannot kick someone with an equal or higher role.")
	if err != nil {
		return err
	}

	mod.dm(ctx.Session, target.User.ID, modembed.New(
		"👢 You have been kicked from "+mod.guildName(ctx), modembed.ColorOrange, []modembed.Field{
			{Label: "Reason", Value: reason, Inline: true},
			{Label: "Moderator", Value: actor.User.String(), Inline: true},
		}))

	err = ctx.Session.GuildMemberDeleteWithReason(ctx.GuildID(), target.User.ID, actor.User.String()+": "+reason)
	if err != nil {
		return err
	}

	embed := modembed.New("👢 Member Kicked", modembed.ColorOrange, []modembed.Field{
		{Label: "Member", Value: memberLabel(target), Inline: true},
		{Label: "Reason", Value: reason, Inline: true},
		{Label: "Moderator", Value: actor.Mention(), Inline: true},
	})

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbed(embed)
}

func (mod *module) commandTimeout(ctx *router.Context) error {
	target, err := mod.targetMember(ctx)
	if err != nil {
		return err
	}

	minutes := ctx.Int("minutes", 10)
	reason := ctx.StringDefault("reason", defaultReason)
	actor := ctx.Member()

	err = mod.requireOutranks(ctx, target, "❌ You cannot timeout someone with an equal or higher role.")
	if err != nil {
		return err
	}

	until := time.Now().UTC().Add(time.Duration(minutes) * time.Minute)

	err = ctx.Session.GuildMemberTimeout(ctx.GuildID(), target.User.ID, &until)
	if err != nil {
		return err
	}

	embed := modembed.New("🔇 Member Timed Out", modembed.ColorDarkOrange, []modembed.Field{
		{Label: "Member", Value: memberLabel(target), Inline: true},
		{Label: "Duration", Value: fmt.Sprintf("%d minute(s)", minutes), Inline: true},
		{Label: "Reason", Value: reason, Inline: true},
		{Label: "Moderator", Value: actor.Mention(), Inline: true},
	})

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbed(embed)
}

func (mod *module) commandUntimeout(ctx *router.Context) error {
	target, err := mod.targetMember(ctx)
	if err != nil {
		return err
	}

	reason := ctx.StringDefault("reason", defaultReason)
	actor := ctx.Member()

	err = ctx.Session.GuildMemberTimeout(ctx.GuildID(), target.User.ID, nil)
	if err != nil {
		return err
	}

	embed := modembed.New("🔊 Timeout Removed", modembed.ColorGreen, []modembed.Field{
		{Label: "Member", Value: memberLabel(target), Inline: true},
		{Label: "Reason", Value: reason, Inline: true},
		{Label: "Moderator", Value: actor.Mention(), Inline: true},
	})

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbed(embed)
}
