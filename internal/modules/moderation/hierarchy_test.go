package moderation

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func guildRoles() []*discordgo.Role {
	return []*discordgo.Role{
		{ID: "100", Position: 0}, // @everyone
		{ID: "4", Position: 4},
		{ID: "5", Position: 5},
		{ID: "6", Position: 6},
	}
}

func member(roleIDs ...string) *discordgo.Member {
	return &discordgo.Member{Roles: roleIDs}
}

func TestTopRolePosition(t *testing.T) {
	roles := guildRoles()

	assert.Equal(t, 0, topRolePosition(roles, member()))
	assert.Equal(t, 5, topRolePosition(roles, member("5")))
	assert.Equal(t, 6, topRolePosition(roles, member("4", "6")))
	assert.Equal(t, 0, topRolePosition(roles, member("unknown")))
}

func TestOutranks(t *testing.T) {
	roles := guildRoles()

	// rank 5 actor cannot target rank 5 or rank 6
	assert.False(t, outranks(roles, member("5"), member("5")))
	assert.False(t, outranks(roles, member("5"), member("6")))

	// rank 5 actor may target rank 4
	assert.True(t, outranks(roles, member("5"), member("4")))

	// members without roles cannot target each other
	assert.False(t, outranks(roles, member(), member()))
	assert.True(t, outranks(roles, member("4"), member()))
}

func TestRolePosition(t *testing.T) {
	roles := guildRoles()

	assert.Equal(t, 6, rolePosition(roles, "6"))
	assert.Equal(t, 0, rolePosition(roles, "unknown"))
}
