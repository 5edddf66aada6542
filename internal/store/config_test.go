package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigUnconfigured(t *testing.T) {
	s := NewConfig(NewMemory())

	_, ok := s.ModeratorRole("100")
	assert.False(t, ok)

	_, ok = s.AdministratorRole("100")
	assert.False(t, ok)
}

func TestConfigSetGet(t *testing.T) {
	s := NewConfig(NewMemory())

	require.NoError(t, s.SetModeratorRole("100", "11"))

	roleID, ok := s.ModeratorRole("100")
	require.True(t, ok)
	assert.Equal(t, "11", roleID)

	_, ok = s.AdministratorRole("100")
	assert.False(t, ok)
}

func TestConfigOverwriteKeepsOtherField(t *testing.T) {
	s := NewConfig(NewMemory())

	require.NoError(t, s.SetModeratorRole("100", "11"))
	require.NoError(t, s.SetAdministratorRole("100", "22"))
	require.NoError(t, s.SetModeratorRole("100", "33"))

	modID, ok := s.ModeratorRole("100")
	require.True(t, ok)
	assert.Equal(t, "33", modID)

	adminID, ok := s.AdministratorRole("100")
	require.True(t, ok)
	assert.Equal(t, "22", adminID)
}

func TestConfigGuildsIndependent(t *testing.T) {
	s := NewConfig(NewMemory())

	require.NoError(t, s.SetModeratorRole("100", "11"))
	require.NoError(t, s.SetModeratorRole("200", "22"))

	modID, ok := s.ModeratorRole("100")
	require.True(t, ok)
	assert.Equal(t, "11", modID)

	modID, ok = s.ModeratorRole("200")
	require.True(t, ok)
	assert.Equal(t, "22", modID)
}

func TestConfigInvalidRoleID(t *testing.T) {
	s := NewConfig(NewMemory())

	assert.Error(t, s.SetModeratorRole("100", "not-a-snowflake"))
	assert.Error(t, s.SetAdministratorRole("100", ""))
}

func TestConfigCorruptDocument(t *testing.T) {
	backend := NewMemory()
	require.NoError(t, backend.Save([]byte("{garbage")))

	s := NewConfig(backend)

	_, ok := s.ModeratorRole("100")
	assert.False(t, ok)

	require.NoError(t, s.SetModeratorRole("100", "11"))

	roleID, ok := s.ModeratorRole("100")
	require.True(t, ok)
	assert.Equal(t, "11", roleID)
}

func TestConfigPersistedForm(t *testing.T) {
	backend := NewMemory()
	s := NewConfig(backend)

	require.NoError(t, s.SetModeratorRole("100", "11"))
	require.NoError(t, s.SetAdministratorRole("100", "22"))

	data, err := backend.Load()
	require.NoError(t, err)

	var doc map[string]map[string]int64

	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, int64(11), doc["100"]["mod_role_id"])
	assert.Equal(t, int64(22), doc["100"]["admin_role_id"])
}
