// Package eventlog forwards membership and message events to the audit
// channel and optionally to a database
package eventlog

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"warden/internal/bot"
	"warden/internal/modembed"
)

// New provides module instance
func New() bot.Module {
	return &module{}
}

func (mod *module) Initialize(config *bot.Configuration) error {
	mod.config = config
	mod.initDB()

	config.Discord.AddHandler(mod.handlerMemberAdd)
	config.Discord.AddHandler(mod.handlerMemberRemove)
	config.Discord.AddHandler(mod.handlerMessageDelete)
	config.Discord.AddHandler(mod.handlerMessageUpdate)

	return nil
}

func relativeTimestamp(id string) string {
	t, err := discordgo.SnowflakeTimestamp(id)
	if err != nil {
		return "Unknown"
	}

	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

// truncate caps s at n bytes without splitting a rune
func truncate(s string, n int) string {
	if s == "" {
		return "*empty*"
	}

	if len(s) <= n {
		return s
	}

	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n]
}

// memberJoinEmbed builds the audit record for a new member
func memberJoinEmbed(member *discordgo.Member, memberCount int) *discordgo.MessageEmbed {
	return modembed.New("👋 Member Joined", modembed.ColorGreen, []modembed.Field{
		{Label: "User", Value: member.Mention(), Inline: true},
		{Label: "Account Created", Value: relativeTimestamp(member.User.ID), Inline: true},
		{Label: "Member Count", Value: strconv.Itoa(memberCount), Inline: true},
	})
}

// memberLeaveEmbed builds the audit record for a departed member
func memberLeaveEmbed(member *discordgo.Member) *discordgo.MessageEmbed {
	joined := "Unknown"
	if !member.JoinedAt.IsZero() {
		joined = fmt.Sprintf("<t:%d:R>", member.JoinedAt.Unix())
	}

	return modembed.New("🚪 Member Left", modembed.ColorOrange, []modembed.Field{
		{Label: "User", Value: member.User.String() + " (" + member.User.ID + ")", Inline: true},
		{Label: "Joined At", Value: joined, Inline: true},
	})
}

// messageDeleteEmbed builds the audit record for a deleted message, nil when
// the message should not be logged
func messageDeleteEmbed(msg *discordgo.Message) *discordgo.MessageEmbed {
	if msg == nil || msg.Author == nil || msg.Author.Bot {
		return nil
	}

	return modembed.New("🗑️ Message Deleted", modembed.ColorRed, []modembed.Field{
		{Label: "Author", Value: msg.Author.String() + " (" + msg.Author.ID + ")", Inline: true},
		{Label: "Channel", Value: "<#" + msg.ChannelID + ">", Inline: true},
		{Label: "Content", Value: truncate(msg.Content, 1024)},
	})
}

// messageEditEmbed builds the audit record for an edited message, nil when
// the edit should not be logged
func messageEditEmbed(before, after *discordgo.Message) *discordgo.MessageEmbed {
	if before == nil || after == nil || before.Author == nil || before.Author.Bot {
		return nil
	}

	if before.Content == after.Content {
		return nil
	}

	return modembed.New("✏️ Message Edited", modembed.ColorYellow, []modembed.Field{
		{Label: "Author", Value: before.Author.String() + " (" + before.Author.ID + ")", Inline: true},
		{Label: "Channel", Value: "<#" + before.ChannelID + ">", Inline: true},
		{Label: "Before", Value: truncate(before.Content, 512)},
		{Label: "After", Value: truncate(after.Content, 512)},
	})
}

func (mod *module) handlerMemberAdd(session *discordgo.Session, memberAdd *discordgo.GuildMemberAdd) {
	memberCount := 0

	if guild, err := session.State.Guild(memberAdd.GuildID); err == nil {
		memberCount = guild.MemberCount
	}

	mod.config.Audit.Emit(memberAdd.GuildID, memberJoinEmbed(memberAdd.Member, memberCount))
	mod.saveEvent(memberAdd.GuildID, "member_join", memberAdd.User.ID, "", "")
}

func (mod *module) handlerMemberRemove(session *discordgo.Session, memberRemove *discordgo.GuildMemberRemove) {
	mod.config.Audit.Emit(memberRemove.GuildID, memberLeaveEmbed(memberRemove.Member))
	mod.saveEvent(memberRemove.GuildID, "member_leave", memberRemove.User.ID, "", "")
}

func (mod *module) handlerMessageDelete(session *discordgo.Session, messageDelete *discordgo.MessageDelete) {
	if messageDelete.GuildID == "" {
		return
	}

	embed := messageDeleteEmbed(messageDelete.BeforeDelete)
	if embed == nil {
		return
	}

	mod.config.Audit.Emit(messageDelete.GuildID, embed)
	mod.saveEvent(messageDelete.GuildID, "message_delete",
		messageDelete.BeforeDelete.Author.ID, messageDelete.ChannelID, messageDelete.BeforeDelete.Content)
}

func (mod *module) handlerMessageUpdate(session *discordgo.Session, messageUpdate *discordgo.MessageUpdate) {
	if messageUpdate.GuildID == "" {
		return
	}

	embed := messageEditEmbed(messageUpdate.BeforeUpdate, messageUpdate.Message)
	if embed == nil {
		return
	}

	mod.config.Audit.Emit(messageUpdate.GuildID, embed)
	mod.saveEvent(messageUpdate.GuildID, "message_edit",
		messageUpdate.BeforeUpdate.Author.ID, messageUpdate.ChannelID, messageUpdate.Content)
}
