package aoc

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearSessionEnv(t *testing.T) {
	t.Setenv("COOKIE", "")
	t.Setenv("AOC_SESSION", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	clearSessionEnv(t)
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		CacheDir:        ".",
		RequestInterval: 3 * time.Second,
		BaseURL:         "https://adventofcode.com",
	}, cfg)
}

func TestLoadConfigFile(t *testing.T) {
	clearSessionEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`session: abc
cache_dir: /tmp/aoc
request_interval: 5s
base_url: http://localhost:8080/
`), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Session:         "abc",
		CacheDir:        "/tmp/aoc",
		RequestInterval: 5 * time.Second,
		BaseURL:         "http://localhost:8080",
	}, cfg)
}

func TestLoadConfigBadYAML(t *testing.T) {
	clearSessionEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session: [\n"), 0600))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session: from-file\n"), 0600))

	tests := []struct {
		name       string
		cookie     string
		aocSession string
		want       string
	}{
		{"file", "", "", "from-file"},
		{"AOC_SESSION", "", "from-aoc", "from-aoc"},
		{"COOKIE wins", "from-cookie", "from-aoc", "from-cookie"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COOKIE", tt.cookie)
			t.Setenv("AOC_SESSION", tt.aocSession)
			cfg, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Session)
		})
	}
}

func TestSessionTokenFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := &Config{}
	_, err := cfg.SessionToken()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, os.MkdirAll(filepath.Join(home, "keys"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(home, "keys", "aoc.session"), []byte("  xyz\n"), 0600))
	got, err := cfg.SessionToken()
	require.NoError(t, err)
	assert.Equal(t, "xyz", got)

	cfg.Session = "configured"
	got, err = cfg.SessionToken()
	require.NoError(t, err)
	assert.Equal(t, "configured", got)
}
