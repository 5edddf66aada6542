package moderation

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warden/internal/audit"
	"warden/internal/bot"
	"warden/internal/store"
)

// dmFake fails direct-message delivery on demand
type dmFake struct {
	channelErr error
	sendErr    error
	sent       int
}

func (f *dmFake) UserChannelCreate(
	recipientID string,
	options ...discordgo.RequestOption,
) (*discordgo.Channel, error) {
	if f.channelErr != nil {
		return nil, f.channelErr
	}

	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func (f *dmFake) ChannelMessageSendEmbed(
	channelID string,
	embed *discordgo.MessageEmbed,
	options ...discordgo.RequestOption,
) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}

	f.sent++

	return &discordgo.Message{}, nil
}

// auditFake records embeds delivered to the log channel
type auditFake struct {
	channels []string
	embeds   []*discordgo.MessageEmbed
}

func (f *auditFake) ChannelMessageSendEmbed(
	channelID string,
	embed *discordgo.MessageEmbed,
	options ...discordgo.RequestOption,
) (*discordgo.Message, error) {
	f.channels = append(f.channels, channelID)
	f.embeds = append(f.embeds, embed)

	return &discordgo.Message{}, nil
}

func warnModule(sender *auditFake) *module {
	log := logrus.New()

	return &module{config: &bot.Configuration{
		Log:      log,
		Warnings: store.NewWarnings(store.NewMemory()),
		Audit:    audit.New(sender, log, "555"),
	}}
}

func namedMember(id, name string) *discordgo.Member {
	return &discordgo.Member{User: &discordgo.User{ID: id, Username: name}}
}

func TestApplyWarn(t *testing.T) {
	sender := &auditFake{}
	mod := warnModule(sender)
	dm := &dmFake{}

	embed, err := mod.applyWarn(dm, "100", "Test Guild", namedMember("1", "subject"), namedMember("2", "mod"), "spam")

	require.NoError(t, err)
	require.NotNil(t, embed)
	assert.Equal(t, 1, dm.sent)
	assert.Equal(t, 1, mod.config.Warnings.Count("100", "1"))
	require.Len(t, sender.channels, 1)
	assert.Equal(t, "555", sender.channels[0])
	assert.Equal(t, embed, sender.embeds[0])
}

func TestApplyWarnDMChannelFailure(t *testing.T) {
	sender := &auditFake{}
	mod := warnModule(sender)
	dm := &dmFake{channelErr: errors.New("cannot send messages to this user")}

	embed, err := mod.applyWarn(dm, "100", "Test Guild", namedMember("1", "subject"), namedMember("2", "mod"), "spam")

	require.NoError(t, err)
	require.NotNil(t, embed)
	assert.Zero(t, dm.sent)
	assert.Equal(t, 1, mod.config.Warnings.Count("100", "1"))
	assert.Len(t, sender.embeds, 1)
}

func TestApplyWarnDMSendFailure(t *testing.T) {
	sender := &auditFake{}
	mod := warnModule(sender)
	dm := &dmFake{sendErr: errors.New("forbidden")}

	embed, err := mod.applyWarn(dm, "100", "Test Guild", namedMember("1", "subject"), namedMember("2", "mod"), "spam")

	require.NoError(t, err)
	require.NotNil(t, embed)
	assert.Equal(t, 1, mod.config.Warnings.Count("100", "1"))
	assert.Len(t, sender.embeds, 1)
}
