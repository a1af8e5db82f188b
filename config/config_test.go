package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clockboard.yaml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.False(t, cfg.Use24Hour)
	assert.Empty(t, cfg.StartupZones)

	// The default file was written
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clockboard.yaml")

	cfg := &Config{
		Use24Hour:    true,
		StartupZones: []string{"Europe/London", "Asia/Tokyo"},
	}
	require.NoError(t, cfg.SaveTo(path))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadFromRejectsInvalidZone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clockboard.yaml")
	data := "use_24_hour: false\nstartup_zones:\n  - Not/A_Zone\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, "Not/A_Zone")
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clockboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("use_24_hour: [oops"), 0644))

	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveToRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clockboard.yaml")

	cfg := &Config{StartupZones: []string{""}}
	err := cfg.SaveTo(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.NoError(t, (&Config{StartupZones: []string{"UTC"}}).Validate())
	assert.Error(t, (&Config{StartupZones: []string{"Nowhere"}}).Validate())
}
