// Package audit forwards moderation records to a configured log channel
package audit

import (
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Sender delivers an embed to a channel, satisfied by discordgo.Session
type Sender interface {
	ChannelMessageSendEmbed(
		channelID string,
		embed *discordgo.MessageEmbed,
		options ...discordgo.RequestOption,
	) (*discordgo.Message, error)
}

// Emitter sends audit embeds to the log channel configured for a guild,
// falling back to the global log channel. With no channel configured,
// emission is silently disabled.
type Emitter struct {
	discord  Sender
	log      *logrus.Logger
	fallback string
	channels map[string]string
	m        sync.RWMutex
}

// New provides Emitter instance with given global fallback channel ID
func New(discord Sender, log *logrus.Logger, fallback string) *Emitter {
	return &Emitter{
		discord:  discord,
		log:      log,
		fallback: fallback,
		channels: make(map[string]string),
	}
}

// SetChannel sets per-guild log channel
func (e *Emitter) SetChannel(guildID, channelID string) {
	e.m.Lock()
	e.channels[guildID] = channelID
	e.m.Unlock()
}

// Channel returns the effective log channel for given guild, empty if none
func (e *Emitter) Channel(guildID string) string {
	e.m.RLock()
	channelID := e.channels[guildID]
	e.m.RUnlock()

	if channelID == "" {
		channelID = e.fallback
	}

	return channelID
}

// Emit forwards an audit embed; delivery failure is logged, never returned
func (e *Emitter) Emit(guildID string, embed *discordgo.MessageEmbed) {
	channelID := e.Channel(guildID)
	if channelID == "" {
		return
	}

	_, err := e.discord.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		e.log.WithError(err).Error("Sending audit record", guildID, channelID)
	}
}
