package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	months := []string{"january", "february", "march"}

	assert.True(t, ContainsString("March", months))
	assert.True(t, ContainsString("january", months))
	assert.False(t, ContainsString("june", months))
	assert.False(t, ContainsString("", months))
}

func TestIndexOfString(t *testing.T) {
	days := []string{"monday", "tuesday"}

	assert.Equal(t, 1, IndexOfString("TUESDAY", days))
	assert.Equal(t, -1, IndexOfString("sunday", days))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "new york city", Normalize("  New York City\n"))
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0600))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: debug\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
