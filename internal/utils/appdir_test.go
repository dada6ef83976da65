package utils

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathsAreUnderAppDataDir(t *testing.T) {
	base := GetAppDataDir()
	assert.NotEmpty(t, base)
	assert.Equal(t, filepath.Join(base, "logs"), GetLogDir())
	assert.Equal(t, filepath.Join(base, "config.yaml"), GetConfigPath())
}

func TestGetAppDataDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux only")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "radiolite"), GetAppDataDir())
	assert.NoError(t, EnsureAppDirs())
	assert.DirExists(t, GetLogDir())
}
