package eventlog

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func testMember(id, username string, bot bool) *discordgo.Member {
	return &discordgo.Member{
		User: &discordgo.User{
			ID:       id,
			Username: username,
			Bot:      bot,
		},
	}
}

func testMessage(authorID, channelID, content string, bot bool) *discordgo.Message {
	return &discordgo.Message{
		Author: &discordgo.User{
			ID:       authorID,
			Username: "someone",
			Bot:      bot,
		},
		ChannelID: channelID,
		Content:   content,
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "*empty*", truncate("", 10))
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "0123456789", truncate("0123456789abc", 10))
}

func TestTruncateRuneBoundary(t *testing.T) {
	// cutting mid-rune must back up to the previous boundary
	assert.Equal(t, "日", truncate("日本語", 4))
	assert.Equal(t, "日本語", truncate("日本語", 9))

	long := strings.Repeat("日", 400)
	cut := truncate(long, 1024)

	assert.True(t, utf8.ValidString(cut))
	assert.Equal(t, 1023, len(cut))
}

func TestMemberJoinEmbed(t *testing.T) {
	embed := memberJoinEmbed(testMember("1234", "newcomer", false), 42)

	assert.Equal(t, "👋 Member Joined", embed.Title)
	assert.Len(t, embed.Fields, 3)
	assert.Equal(t, "<@1234>", embed.Fields[0].Value)
	assert.Equal(t, "42", embed.Fields[2].Value)
}

func TestMemberLeaveEmbed(t *testing.T) {
	member := testMember("1234", "leaver", false)
	member.JoinedAt = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	embed := memberLeaveEmbed(member)

	assert.Equal(t, "🚪 Member Left", embed.Title)
	assert.Contains(t, embed.Fields[1].Value, "<t:")
}

func TestMemberLeaveEmbedUnknownJoin(t *testing.T) {
	embed := memberLeaveEmbed(testMember("1234", "leaver", false))

	assert.Equal(t, "Unknown", embed.Fields[1].Value)
}

func TestMessageDeleteEmbed(t *testing.T) {
	embed := messageDeleteEmbed(testMessage("1", "99", "hello there", false))

	assert.NotNil(t, embed)
	assert.Equal(t, "<#99>", embed.Fields[1].Value)
	assert.Equal(t, "hello there", embed.Fields[2].Value)
}

func TestMessageDeleteEmbedSkips(t *testing.T) {
	assert.Nil(t, messageDeleteEmbed(nil))
	assert.Nil(t, messageDeleteEmbed(&discordgo.Message{}))
	assert.Nil(t, messageDeleteEmbed(testMessage("1", "99", "beep", true)))
}

func TestMessageDeleteEmbedTruncates(t *testing.T) {
	long := strings.Repeat("a", 2000)

	embed := messageDeleteEmbed(testMessage("1", "99", long, false))

	assert.Len(t, embed.Fields[2].Value, 1024)
}

func TestMessageEditEmbed(t *testing.T) {
	before := testMessage("1", "99", "old", false)
	after := testMessage("1", "99", "new", false)

	embed := messageEditEmbed(before, after)

	assert.NotNil(t, embed)
	assert.Equal(t, "old", embed.Fields[2].Value)
	assert.Equal(t, "new", embed.Fields[3].Value)
}

func TestMessageEditEmbedSkips(t *testing.T) {
	msg := testMessage("1", "99", "same", false)

	assert.Nil(t, messageEditEmbed(nil, msg))
	assert.Nil(t, messageEditEmbed(msg, nil))
	assert.Nil(t, messageEditEmbed(msg, testMessage("1", "99", "same", false)))
	assert.Nil(t, messageEditEmbed(testMessage("1", "99", "a", true), testMessage("1", "99", "b", true)))
}
