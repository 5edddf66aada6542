package router

import (
	"github.com/bwmarrin/discordgo"
)

// Context simplifies interaction handling
type Context struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Command     *Command

	options  map[string]*discordgo.ApplicationCommandInteractionDataOption
	deferred bool
}

func newContext(session *discordgo.Session, interaction *discordgo.InteractionCreate, cmd *Command) *Context {
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)

	for _, opt := range interaction.ApplicationCommandData().Options {
		options[opt.Name] = opt
	}

	return &Context{
		Session:     session,
		Interaction: interaction,
		Command:     cmd,
		options:     options,
	}
}

// GuildID returns the guild the interaction originates from
func (ctx *Context) GuildID() string {
	return ctx.Interaction.GuildID
}

// ChannelID returns the channel the interaction originates from
func (ctx *Context) ChannelID() string {
	return ctx.Interaction.ChannelID
}

// Member returns the invoking guild member
func (ctx *Context) Member() *discordgo.Member {
	return ctx.Interaction.Member
}

// Guild returns the originating guild, preferring state cache
func (ctx *Context) Guild() (*discordgo.Guild, error) {
	guild, err := ctx.Session.State.Guild(ctx.GuildID())
	if err == nil {
		return guild, nil
	}

	return ctx.Session.Guild(ctx.GuildID())
}

// String returns string option value, empty if absent
func (ctx *Context) String(name string) string {
	return ctx.StringDefault(name, "")
}

// StringDefault returns string option value or given default if absent
func (ctx *Context) StringDefault(name, def string) string {
	opt, ok := ctx.options[name]
	if !ok {
		return def
	}

	return opt.StringValue()
}

// Int returns integer option value or given default if absent
func (ctx *Context) Int(name string, def int64) int64 {
	opt, ok := ctx.options[name]
	if !ok {
		return def
	}

	return opt.IntValue()
}

// Role returns role option value, nil if absent
func (ctx *Context) Role(name string) *discordgo.Role {
	opt, ok := ctx.options[name]
	if !ok {
		return nil
	}

	return opt.RoleValue(ctx.Session, ctx.GuildID())
}

// User returns user option value, nil if absent
func (ctx *Context) User(name string) *discordgo.User {
	opt, ok := ctx.options[name]
	if !ok {
		return nil
	}

	return opt.UserValue(ctx.Session)
}

// Channel returns channel option value, nil if absent
func (ctx *Context) Channel(name string) *discordgo.Channel {
	opt, ok := ctx.options[name]
	if !ok {
		return nil
	}

	return opt.ChannelValue(ctx.Session)
}

// TargetMember resolves a user option to a live guild member
func (ctx *Context) TargetMember(name string) (*discordgo.Member, error) {
	user := ctx.User(name)
	if user == nil {
		return nil, nil
	}

	member, err := ctx.Session.GuildMember(ctx.GuildID(), user.ID)
	if err != nil {
		return nil, err
	}

	member.GuildID = ctx.GuildID()

	return member, nil
}

// Defer acknowledges the interaction, allowing a later followup response
func (ctx *Context) Defer(ephemeral bool) error {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	err := ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: flags,
		},
	})
	if err != nil {
		return err
	}

	ctx.deferred = true

	return nil
}

func (ctx *Context) respond(content string, embeds []*discordgo.MessageEmbed, ephemeral bool) error {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	if ctx.deferred {
		_, err := ctx.Session.FollowupMessageCreate(ctx.Interaction.Interaction, true, &discordgo.WebhookParams{
			Content: content,
			Embeds:  embeds,
			Flags:   flags,
		})

		return err
	}

	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Embeds:  embeds,
			Flags:   flags,
		},
	})
}

// Reply responds with a public message
func (ctx *Context) Reply(content string) error {
	return ctx.respond(content, nil, false)
}

// ReplyEphemeral responds with a message visible only to the invoker
func (ctx *Context) ReplyEphemeral(content string) error {
	return ctx.respond(content, nil, true)
}

// ReplyEmbed responds with a public embed
func (ctx *Context) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	return ctx.respond("", []*discordgo.MessageEmbed{embed}, false)
}

// ReplyEmbedEphemeral responds with an embed visible only to the invoker
func (ctx *Context) ReplyEmbedEphemeral(embed *discordgo.MessageEmbed) error {
	return ctx.respond("", []*discordgo.MessageEmbed{embed}, true)
}
