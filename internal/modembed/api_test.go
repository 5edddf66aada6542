package modembed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldOrder(t *testing.T) {
	embed := New("Member Warned", ColorYellow, []Field{
		{Label: "Member", Value: "user (55)", Inline: true},
		{Label: "Reason", Value: "spam", Inline: true},
		{Label: "Moderator", Value: "<@1>", Inline: true},
	})

	assert.Equal(t, "Member Warned", embed.Title)
	assert.Equal(t, ColorYellow, embed.Color)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "Member", embed.Fields[0].Name)
	assert.Equal(t, "Reason", embed.Fields[1].Name)
	assert.Equal(t, "Moderator", embed.Fields[2].Name)
	assert.Equal(t, "spam", embed.Fields[1].Value)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, FooterText, embed.Footer.Text)
	assert.NotEmpty(t, embed.Timestamp)
}

func TestParseColor(t *testing.T) {
	v, err := ParseColor("#e8312a")
	require.NoError(t, err)
	assert.Equal(t, ColorAnnouncement, v)

	v, err = ParseColor("E8312A")
	require.NoError(t, err)
	assert.Equal(t, ColorAnnouncement, v)

	_, err = ParseColor("xyz")
	assert.Error(t, err)
}
