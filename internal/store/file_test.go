package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMissing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "config.json"))

	data, err := f.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warnings.json")
	f := NewFile(path)

	require.NoError(t, f.Save([]byte(`{"100":{}}`)))

	data, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"100":{}}`, string(data))

	// no temporary file left behind
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileBackedStores(t *testing.T) {
	dir := t.TempDir()

	s := NewConfig(NewFile(filepath.Join(dir, "config.json")))
	require.NoError(t, s.SetAdministratorRole("100", "22"))

	reopened := NewConfig(NewFile(filepath.Join(dir, "config.json")))

	roleID, ok := reopened.AdministratorRole("100")
	require.True(t, ok)
	assert.Equal(t, "22", roleID)
}
