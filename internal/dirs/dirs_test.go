package dirs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDirHonorsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only consulted on linux")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	got, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "capacity"), got)

	file, err := ConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "capacity", "config.yaml"), file)
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	require.Error(t, Ensure(""))

	p := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, Ensure(p))
	fi, err := os.Stat(p)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}
