package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MOTIF_TEST_VALUE=from-file\n"), 0644))

	t.Setenv("ENV_PATH", path)
	t.Setenv("MOTIF_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("MOTIF_TEST_VALUE"))

	require.NoError(t, LoadDotEnv("local", "ignored"))
	assert.Equal(t, "from-file", os.Getenv("MOTIF_TEST_VALUE"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), ".env")

	assert.NoError(t, LoadDotEnv("local", missing))
	assert.NoError(t, LoadDotEnv("prod", missing))
}

func TestGetOr(t *testing.T) {
	t.Setenv("MOTIF_TEST_DIR", "  ")
	assert.Equal(t, "results", GetOr("MOTIF_TEST_DIR", "results"))

	t.Setenv("MOTIF_TEST_DIR", " out ")
	assert.Equal(t, "out", GetOr("MOTIF_TEST_DIR", "results"))
}

func TestGetBool(t *testing.T) {
	for v, want := range map[string]bool{"true": true, "TRUE": true, "1": true, "false": false, "": false} {
		t.Setenv("MOTIF_TEST_FLAG", v)
		assert.Equal(t, want, GetBool("MOTIF_TEST_FLAG"), v)
	}
}
