package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `
entry = "schema/root.graphql"
targets = ["schema/root.graphql", "schema/admin.graphql"]
warn_duplicates = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "schema", "root.graphql"), cfg.Entry)
	assert.Equal(t, []string{
		filepath.Join(dir, "schema", "root.graphql"),
		filepath.Join(dir, "schema", "admin.graphql"),
	}, cfg.Targets)
	assert.False(t, cfg.WarnDuplicates)
}

func TestLoadDefaultsTargetsToEntry(t *testing.T) {
	path := write(t, `entry = "root.graphql"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{cfg.Entry}, cfg.Targets)
	assert.True(t, cfg.WarnDuplicates)
}

func TestLoadRequiresEntry(t *testing.T) {
	path := write(t, `warn_duplicates = true`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry")
}
