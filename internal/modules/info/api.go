// Package info provides member, server and command information commands
package info

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"warden/internal/bot"
	"warden/internal/modembed"
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

	group := config.Router.Group("info").SetDescription("information")

	group.On("userinfo", "View detailed info about a member", router.TierAnyone, mod.commandUserinfo).
		WithOptions(&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "member",
			Description: "The member to look up (defaults to yourself)",
		})

	group.On("serverinfo", "View information about this server", router.TierAnyone, mod.commandServerinfo)

	group.On("help", "List all available commands", router.TierAnyone, mod.commandHelp)

	return nil
}

func (mod *module) Configure(config *bot.Configuration, guild *discordgo.Guild) {

}

func (mod *module) Shutdown(config *bot.Configuration) {

}

func relativeTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

func snowflakeRelative(id string) string {
	t, err := discordgo.SnowflakeTimestamp(id)
	if err != nil {
		return "Unknown"
	}

	return relativeTimestamp(t)
}

func (mod *module) commandUserinfo(ctx *router.Context) error {
	member, err := ctx.TargetMember("member")
	if err != nil {
		return router.Reject("❌ Member not found.")
	}

	if member == nil {
		member = ctx.Member()
	}

	var roles []string

	for _, id := range member.Roles {
		roles = append(roles, "<@&"+id+">")
	}

	rolesValue := "None"
	if len(roles) > 0 {
		rolesValue = strings.Join(roles, " ")
	}

	nick := member.Nick
	if nick == "" {
		nick = "None"
	}

	isBot := "No"
	if member.User.Bot {
		isBot = "Yes"
	}

	joined := "Unknown"
	if !member.JoinedAt.IsZero() {
		joined = relativeTimestamp(member.JoinedAt)
	}

	topRole := "@everyone"

	if guildRoles, err := ctx.Session.GuildRoles(ctx.GuildID()); err == nil {
		top := 0

		for _, id := range member.Roles {
			for _, r := range guildRoles {
				if r.ID == id && r.Position > top {
					top = r.Position
					topRole = r.Mention()
				}
			}
		}
	}

	warnCount := mod.config.Warnings.Count(ctx.GuildID(), member.User.ID)

	embed := modembed.New("👤 "+member.User.String(), modembed.ColorBlurple, []modembed.Field{
		{Label: "ID", Value: member.User.ID, Inline: true},
		{Label: "Nickname", Value: nick, Inline: true},
		{Label: "Bot", Value: isBot, Inline: true},
		{Label: "Account Created", Value: snowflakeRelative(member.User.ID), Inline: true},
		{Label: "Joined Server", Value: joined, Inline: true},
		{Label: "Top Role", Value: topRole, Inline: true},
		{Label: fmt.Sprintf("Roles (%d)", len(roles)), Value: rolesValue},
		{Label: "Warnings", Value: strconv.Itoa(warnCount), Inline: true},
	})

	embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
		URL: member.AvatarURL(""),
	}

	return ctx.ReplyEmbed(embed)
}

func (mod *module) commandServerinfo(ctx *router.Context) error {
	guild, err := ctx.Guild()
	if err != nil {
		return err
	}

	owner := "Unknown"
	if guild.OwnerID != "" {
		owner = "<@" + guild.OwnerID + ">"
	}

	channels := len(guild.Channels)

	if channels == 0 {
		if list, err := ctx.Session.GuildChannels(guild.ID); err == nil {
			channels = len(list)
		}
	}

	embed := modembed.New("🏰 "+guild.Name, modembed.ColorBlurple, []modembed.Field{
		{Label: "Owner", Value: owner, Inline: true},
		{Label: "Members", Value: strconv.Itoa(guild.MemberCount), Inline: true},
		{Label: "Roles", Value: strconv.Itoa(len(guild.Roles)), Inline: true},
		{Label: "Channels", Value: strconv.Itoa(channels), Inline: true},
		{Label: "Boosts", Value: strconv.Itoa(guild.PremiumSubscriptionCount), Inline: true},
		{Label: "Boost Level", Value: strconv.Itoa(int(guild.PremiumTier)), Inline: true},
		{Label: "Created", Value: snowflakeRelative(guild.ID), Inline: true},
		{Label: "Verification", Value: verificationLabel(guild.VerificationLevel), Inline: true},
	})

	embed.Footer.Text = "ID: " + guild.ID

	if guild.Icon != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
			URL: guild.IconURL(""),
		}
	}

	return ctx.ReplyEmbed(embed)
}

func verificationLabel(level discordgo.VerificationLevel) string {
	switch level {
	case discordgo.VerificationLevelNone:
		return "None"
	case discordgo.VerificationLevelLow:
		return "Low"
	case discordgo.VerificationLevelMedium:
		return "Medium"
	case discordgo.VerificationLevelHigh:
		return "High"
	case discordgo.VerificationLevelVeryHigh:
		return "Very High"
	default:
		return "Unknown"
	}
}

func title(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

func (mod *module) commandHelp(ctx *router.Context) error {
	var fields []modembed.Field

	for _, group := range ctx.Command.Router.Groups {
		buf := &strings.Builder{}

		for _, cmd := range group.Commands {
			buf.WriteString("`/" + cmd.Name + "` — " + cmd.Description + "\n")
		}

		fields = append(fields, modembed.Field{
			Label: title(group.Name) + " Commands",
			Value: buf.String(),
		})
	}

	fields = append(fields, modembed.Field{
		Label: "🔐 Setup",
		Value: "Use `/setadminrole` and `/setmodrole` (requires Discord Admin permission) to configure role-based access.",
	})

	embed := modembed.New("📋 Bot Commands", modembed.ColorAnnouncement, fields)

	return ctx.ReplyEmbedEphemeral(embed)
}
