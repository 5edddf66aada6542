package moderation

import (
	"strconv"

	"github.com/bwmarrin/discordgo"

	"warden/internal/modembed"
	"warden/internal/router"
)

// targetChannelID returns the channel option when set, the invoking channel
// otherwise
func targetChannelID(ctx *router.Context) string {
	if channel := ctx.Channel("channel"); channel != nil {
		return channel.ID
	}

	return ctx.ChannelID()
}

func (mod *module) commandPurge(ctx *router.Context) error {
	amount := int(ctx.Int("amount", 10))
	target := ctx.User("member")

	// deletion can take longer than the initial response window
	err := ctx.Defer(true)
	if err != nil {
		return err
	}

	messages, err := ctx.Session.ChannelMessages(ctx.ChannelID(), amount, "", "", "")
	if err != nil {
		return err
	}

	var ids []string

	for _, m := range messages {
		if target == nil || (m.Author != nil && m.Author.ID == target.ID) {
			ids = append(ids, m.ID)
		}
	}

	switch len(ids) {
	case 0:
	case 1:
		err = ctx.Session.ChannelMessageDelete(ctx.ChannelID(), ids[0])
	default:
		err = ctx.Session.ChannelMessagesBulkDelete(ctx.ChannelID(), ids)
	}

	if err != nil {
		return err
	}

	targetLabel := "Everyone"
	if target != nil {
		targetLabel = target.Mention()
	}

	embed := modembed.New("🧹 Messages Purged", modembed.ColorBlurple, []modembed.Field{
		{Label: "Channel", Value: channelMention(ctx.ChannelID()), Inline: true},
		{Label: "Deleted", Value: strconv.Itoa(len(ids)), Inline: true},
		{Label: "Target", Value: targetLabel, Inline: true},
		{Label: "Moderator", Value: ctx.Member().Mention(), Inline: true},
	})

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbedEphemeral(embed)
}

func (mod *module) commandSlowmode(ctx *router.Context) error {
	seconds := int(ctx.Int("seconds", 0))
	channelID := targetChannelID(ctx)

	_, err := ctx.Session.ChannelEdit(channelID, &discordgo.ChannelEdit{
		RateLimitPerUser: &seconds,
	})
	if err != nil {
		return err
	}

	delay := "Disabled"
	if seconds > 0 {
		delay = strconv.Itoa(seconds) + "s"
	}

	embed := modembed.New("⏱️ Slowmode Updated", modembed.ColorBlurple, []modembed.Field{
		{Label: "Channel", Value: channelMention(channelID), Inline: true},
		{Label: "Delay", Value: delay, Inline: true},
		{Label: "Moderator", Value: ctx.Member().Mention(), Inline: true},
	})

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbed(embed)
}

// setSendMessages updates the @everyone overwrite of a channel, preserving
// all other permission bits
func (mod *module) setSendMessages(ctx *router.Context, channelID string, locked bool) error {
	channel, err := ctx.Session.Channel(channelID)
	if err != nil {
		return err
	}

	everyoneID := ctx.GuildID()

	var allow, deny int64

	for _, overwrite := range channel.PermissionOverwrites {
		if overwrite.ID == everyoneID && overwrite.Type == discordgo.PermissionOverwriteTypeRole {
			allow, deny = overwrite.Allow, overwrite.Deny
		}
	}

	if locked {
		deny |= discordgo.PermissionSendMessages
		allow &^= discordgo.PermissionSendMessages
	} else {
		deny &^= discordgo.PermissionSendMessages
	}

	return ctx.Session.ChannelPermissionSet(channelID, everyoneID, discordgo.PermissionOverwriteTypeRole, allow, deny)
}

func (mod *module) commandLock(ctx *router.Context) error {
	channelID := targetChannelID(ctx)
	reason := ctx.StringDefault("reason", defaultReason)

	err := mod.setSendMessages(ctx, channelID, true)
	if err != nil {
		return err
	}

	embed := modembed.New("🔒 Channel Locked", modembed.ColorRed, []modembed.Field{
		{Label: "Channel", Value: channelMention(channelID), Inline: true},
		{Label: "Reason", Value: reason, Inline: true},
		{Label: "Moderator", Value: ctx.Member().Mention(), Inline: true},
	})

	_, err = ctx.Session.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{
		Description: "🔒 This channel has been locked by a moderator.",
		Color:       modembed.ColorRed,
	})
	if err != nil {
		mod.config.Log.WithError(err).Error("Sending lock notice", channelID)
	}

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbed(embed)
}

func (mod *module) commandUnlock(ctx *router.Context) error {
	channelID := targetChannelID(ctx)
	reason := ctx.StringDefault("reason", defaultReason)

	err := mod.setSendMessages(ctx, channelID, false)
	if err != nil {
		return err
	}

	embed := modembed.New("🔓 Channel Unlocked", modembed.ColorGreen, []modembed.Field{
		{Label: "Channel", Value: channelMention(channelID), Inline: true},
		{Label: "Reason", Value: reason, Inline: true},
		{Label: "Moderator", Value: ctx.Member().Mention(), Inline: true},
	})

	_, err = ctx.Session.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{
		Description: "🔓 This channel has been unlocked.",
		Color:       modembed.ColorGreen,
	})
	if err != nil {
		mod.config.Log.WithError(err).Error("Sending unlock notice", channelID)
	}

	mod.config.Audit.Emit(ctx.GuildID(), embed)

	return ctx.ReplyEmbed(embed)
}
