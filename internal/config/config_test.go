package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	raw := `
private:
  token: abc
  log_channel_id: "123"
  data: /var/lib/warden
servers:
  - id: "100"
    log_channel_id: "456"
`

	root, err := Read(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "abc", root.Private.Token)
	assert.Equal(t, "123", root.Private.LogChannelID)
	require.Len(t, root.Servers, 1)
	assert.Equal(t, "100", root.Servers[0].GuildID)
	assert.Equal(t, "456", root.Servers[0].LogChannelID)
}

func TestReadEmpty(t *testing.T) {
	root, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, root.Private.Token)
}

func TestOverlayEnv(t *testing.T) {
	t.Setenv(EnvToken, "fromenv")
	t.Setenv(EnvLogChannelID, "789")

	root := &Root{}
	root.OverlayEnv()

	assert.Equal(t, "fromenv", root.Private.Token)
	assert.Equal(t, "789", root.Private.LogChannelID)
}

func TestOverlayEnvInvalidChannel(t *testing.T) {
	t.Setenv(EnvToken, "fromenv")
	t.Setenv(EnvLogChannelID, "not-a-number")

	root := &Root{Private: Private{LogChannelID: "123"}}
	root.OverlayEnv()

	assert.Empty(t, root.Private.LogChannelID)
}

func TestDigits(t *testing.T) {
	assert.True(t, Digits("1234567890"))
	assert.False(t, Digits(""))
	assert.False(t, Digits("12a"))
	assert.False(t, Digits(" 12"))
}
