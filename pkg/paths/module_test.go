package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ELO_HOME", dir)

	p, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, dir, p.Home)
	assert.Equal(t, filepath.Join(dir, "config.json"), p.ConfigFile())
	assert.Equal(t, filepath.Join(dir, "match_history"), p.HistoryDir())
}

func TestResolveDefault(t *testing.T) {
	t.Setenv("ELO_HOME", "")

	p, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, ".elo", filepath.Base(p.Home))
}
