package tzdir

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir, err := Load()
	require.NoError(t, err)
	assert.Greater(t, len(dir), 40)

	seen := make(map[string]bool)
	for _, info := range dir {
		assert.NotEmpty(t, info.Key)
		assert.NotEmpty(t, info.Display)
		require.NotNil(t, info.Location, "location missing for %s", info.Key)
		assert.False(t, seen[info.Key], "duplicate key %s", info.Key)
		seen[info.Key] = true
	}
}

func TestFind(t *testing.T) {
	dir, err := Load()
	require.NoError(t, err)

	info, ok := Find(dir, "Europe/London")
	require.True(t, ok)
	assert.Equal(t, "London", info.Display)

	_, ok = Find(dir, "Mars/Olympus_Mons")
	assert.False(t, ok)
}

func TestOffsetLabel(t *testing.T) {
	assert.Equal(t, "GMT+05:30", Info{OffsetMinutes: 330}.OffsetLabel())
	assert.Equal(t, "GMT-03:30", Info{OffsetMinutes: -210}.OffsetLabel())
	assert.Equal(t, "GMT+00:00", Info{OffsetMinutes: 0}.OffsetLabel())
}

func TestResolvePrefersDirectoryEntry(t *testing.T) {
	dir, err := Load()
	require.NoError(t, err)

	info, err := Resolve(dir, "Asia/Kolkata", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "New Delhi", info.Display)
	assert.NotEmpty(t, info.Abbreviations)
}

func TestResolveFallsBackToIANAKey(t *testing.T) {
	dir, err := Load()
	require.NoError(t, err)

	info, err := Resolve(dir, "Pacific/Chatham", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Chatham", info.Display)
	require.NotNil(t, info.Location)

	_, err = Resolve(dir, "Not/A_Zone", time.Now())
	assert.Error(t, err)
}
