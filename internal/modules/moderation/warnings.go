package moderation

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"warden/internal/modembed"
	"warden/internal/router"
)

// applyWarn records the warning, notifies the subject and emits the audit
// record. Persistence comes first so the announced total matches the ledger;
// a failed direct message never aborts the rest of the flow.
func (mod *module) applyWarn(
	session dmSession,
	guildID, guildName string,
	target, actor *discordgo.Member,
	reason string,
) (*discordgo.MessageEmbed, error) {
	count, err := mod.config.Warnings.Add(guildID, target.User.ID, reason, actor.User.String())
	if err != nil {
		return nil, err
	}

	mod.dm(session, target.User.ID, modembed.New(
		"⚠️ You have been warned in "+guildName, modembed.ColorYellow, []modembed.Field{
			{Label: "Reason", Value: reason, Inline: true},
			{Label: "Moderator", Value: actor.User.String(), Inline: true},
			{Label: "Total Warnings", Value: strconv.Itoa(count), Inline: true},
		}))

	embed := modembed.New("⚠️ Member Warned", modembed.ColorYellow, []modembed.Field{
		{Label: "Member", Value: memberLabel(target), Inline: true},
		{Label: "Reason", Value: reason, Inline: true},
		{Label: "Total Warnings", Value: strconv.Itoa(count), Inline: true},
		{Label: "Moderator", Value: actor.Mention(), Inline: true},
	})

	mod.config.Audit.Emit(guildID, embed)

	return embed, nil
}

func (mod *module) commandWarn(ctx *router.Context) error {
	target, err := mod.targetMember(ctx)
	if err != nil {
		return err
	}

	reason := ctx.StringDefault("reason", defaultReason)

	embed, err := mod.applyWarn(ctx.Session, ctx.GuildID(), mod.guildName(ctx), target, ctx.Member(), reason)
	if err != nil {
		return err
	}

	return ctx.ReplyEmbed(embed)
}

func (mod *module) commandWarnings(ctx *router.Context) error {
	user := ctx.User("member")
	if user == nil {
		return router.Reject("❌ Member not found.")
	}

	warns := mod.config.Warnings.List(ctx.GuildID(), user.ID)
	if len(warns) == 0 {
		return ctx.ReplyEphemeral("✅ " + user.Mention() + " has no warnings.")
	}

	var fields []modembed.Field

	for i, w := range warns {
		fields = append(fields, modembed.Field{
			Label: fmt.Sprintf("Warning %d", i+1),
			Value: fmt.Sprintf("**Reason:** %s\n**Mod:** %s\n**Date:** %s",
				w.Reason, w.Moderator, w.Timestamp.Format("2006-01-02")),
		})
	}

	embed := modembed.New("⚠️ Warnings for "+user.String(), modembed.ColorYellow, fields)
	embed.Footer.Text = fmt.Sprintf("Total: %d warning(s)", len(warns))

	return ctx.ReplyEmbedEphemeral(embed)
}

func (mod *module) commandClearWarnings(ctx *router.Context) error {
	target, err := mod.targetMember(ctx)
	if err != nil {
		return err
	}

	err = mod.config.Warnings.Clear(ctx.GuildID(), target.User.ID)
	if err != nil {
		return err
	}

	embed := modembed.New("🧹 Warnings Cleared", modembed.ColorGreen, []modembed.Field{
		{Label: "Member", Value: memberLabel(target), Inline: true},
		{Label: "Moderator", Value: ctx.Member().Mention(), Inline: true},
	})

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbed(embed)
}
