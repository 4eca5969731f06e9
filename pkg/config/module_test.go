package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultCompetition, config.DefaultCompetition)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".elo", "config.json")

	config := &Config{DefaultCompetition: "office"}
	require.NoError(t, config.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "office", loaded.DefaultCompetition)
}

func TestCaseFolding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config := &Config{DefaultCompetition: "Office"}
	require.NoError(t, config.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"default_competition":"office"}`, string(data))

	// Folded on read as well, even if the file was written by hand.
	require.NoError(t, os.WriteFile(path, []byte(`{"default_competition":"CLUB"}`), 0644))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "club", loaded.DefaultCompetition)
}

func TestLoadEmptyField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultCompetition, config.DefaultCompetition)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
