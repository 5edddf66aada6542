package moderation

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"warden/internal/router"
)

func memberLabel(member *discordgo.Member) string {
	return member.User.String() + " (" + member.User.ID + ")"
}

func userLabel(user *discordgo.User) string {
	return user.String() + " (" + user.ID + ")"
}

func channelMention(channelID string) string {
	return "<#" + channelID + ">"
}

func restNotFound(err error) bool {
	var rest *discordgo.RESTError

	if !errors.As(err, &rest) {
		return false
	}

	return rest.Response != nil && rest.Response.StatusCode == http.StatusNotFound
}

func (mod *module) guildName(ctx *router.Context) string {
	guild, err := ctx.Guild()
	if err != nil {
		mod.config.Log.WithError(err).Error("Getting guild", ctx.GuildID())

		return "this server"
	}

	return guild.Name
}

// dmSession is the slice of the discord session used for direct messages,
// satisfied by discordgo.Session
type dmSession interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(
		channelID string,
		embed *discordgo.MessageEmbed,
		options ...discordgo.RequestOption,
	) (*discordgo.Message, error)
}

// dm sends a best-effort direct message. The subject may have direct
// messages disabled or block the bot; delivery failure must never abort the
// surrounding command.
func (mod *module) dm(session dmSession, userID string, embed *discordgo.MessageEmbed) {
	channel, err := session.UserChannelCreate(userID)
	if err != nil {
		mod.config.Log.WithError(err).Debug("Opening DM channel", userID)

		return
	}

	_, err = session.ChannelMessageSendEmbed(channel.ID, embed)
	if err != nil {
		mod.config.Log.WithError(err).Debug("Sending DM", userID)
	}
}

// targetMember resolves the "member" option, rejecting when the member is
// not part of the guild
func (mod *module) targetMember(ctx *router.Context) (*discordgo.Member, error) {
	target, err := ctx.TargetMember("member")
	if err != nil || target == nil {
		return nil, router.Reject("❌ Member not found.")
	}

	return target, nil
}
