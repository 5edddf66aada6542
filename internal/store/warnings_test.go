package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarningsEmpty(t *testing.T) {
	s := NewWarnings(NewMemory())

	assert.Empty(t, s.List("100", "55"))
	assert.Zero(t, s.Count("100", "55"))
}

func TestWarningsAddOrderAndCount(t *testing.T) {
	s := NewWarnings(NewMemory())

	reasons := []string{"spam", "flood", "spam again"}

	for i, reason := range reasons {
		count, err := s.Add("100", "55", reason, "mod#1")
		require.NoError(t, err)
		assert.Equal(t, i+1, count)
	}

	list := s.List("100", "55")
	require.Len(t, list, 3)

	for i, w := range list {
		assert.Equal(t, reasons[i], w.Reason)
		assert.Equal(t, "mod#1", w.Moderator)
		assert.False(t, w.Timestamp.IsZero())
	}

	assert.Equal(t, 3, s.Count("100", "55"))
}

func TestWarningsUsersIndependent(t *testing.T) {
	s := NewWarnings(NewMemory())

	_, err := s.Add("100", "55", "spam", "mod#1")
	require.NoError(t, err)

	_, err = s.Add("100", "66", "flood", "mod#1")
	require.NoError(t, err)

	_, err = s.Add("200", "55", "other guild", "mod#2")
	require.NoError(t, err)

	assert.Len(t, s.List("100", "55"), 1)
	assert.Len(t, s.List("100", "66"), 1)
	assert.Len(t, s.List("200", "55"), 1)
	assert.Equal(t, "other guild", s.List("200", "55")[0].Reason)
}

func TestWarningsClear(t *testing.T) {
	s := NewWarnings(NewMemory())

	_, err := s.Add("100", "55", "spam", "mod#1")
	require.NoError(t, err)

	require.NoError(t, s.Clear("100", "55"))
	assert.Empty(t, s.List("100", "55"))

	// second clear is a no-op
	require.NoError(t, s.Clear("100", "55"))
	assert.Empty(t, s.List("100", "55"))
}

func TestWarningsClearUnknown(t *testing.T) {
	s := NewWarnings(NewMemory())

	require.NoError(t, s.Clear("100", "55"))
	require.NoError(t, s.Clear("999", "55"))
}

func TestWarningsCorruptDocument(t *testing.T) {
	backend := NewMemory()
	require.NoError(t, backend.Save([]byte("[not an object]")))

	s := NewWarnings(backend)

	assert.Empty(t, s.List("100", "55"))

	count, err := s.Add("100", "55", "spam", "mod#1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWarningsPersistAcrossInstances(t *testing.T) {
	backend := NewMemory()

	s := NewWarnings(backend)

	_, err := s.Add("100", "55", "spam", "mod#1")
	require.NoError(t, err)

	reopened := NewWarnings(backend)

	list := reopened.List("100", "55")
	require.Len(t, list, 1)
	assert.Equal(t, "spam", list[0].Reason)
}
