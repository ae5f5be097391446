package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs so
// only files created by the test are found.
func isolate(t *testing.T) (home, work string) {
	t.Helper()

	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg, "embedded YAML and Default() must agree")
}

func TestLoadCustomPath(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "mine.yaml")
	writeFile(t, path, "board:\n  width: 9\nplayers:\n  one: \"#ff3366\"\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Board.Width)
	assert.Equal(t, 6, cfg.Board.Height, "unset keys keep defaults")
	assert.Equal(t, "#ff3366", cfg.Players.One)
	assert.Equal(t, "yellow", cfg.Players.Two)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(work, "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(work, "bad.yaml")
		writeFile(t, path, "board: [not, a, map")

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoadSearchOrder(t *testing.T) {
	t.Run("user config wins over local", func(t *testing.T) {
		home, work := isolate(t)
		writeFile(t, filepath.Join(home, ".connect4", "config.yaml"), "players:\n  one: green\n")
		writeFile(t, filepath.Join(work, LocalPath), "players:\n  one: purple\n")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "green", cfg.Players.One)
	})

	t.Run("local config when no user config", func(t *testing.T) {
		_, work := isolate(t)
		writeFile(t, filepath.Join(work, LocalPath), "server:\n  idle_timeout: 5m\n")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, cfg.Server.IdleTimeout)
	})

	t.Run("broken user config is skipped", func(t *testing.T) {
		home, work := isolate(t)
		writeFile(t, filepath.Join(home, ".connect4", "config.yaml"), "board: [unclosed")
		writeFile(t, filepath.Join(work, LocalPath), "board:\n  height: 8\n")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Board.Height)
	})
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CONNECT4_BOARD_HEIGHT", "5")
	t.Setenv("CONNECT4_PLAYER2_COLOR", "208")
	t.Setenv("CONNECT4_SSH_ADDR", "127.0.0.1:2222")
	t.Setenv("CONNECT4_SSH_IDLE_TIMEOUT", "90s")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Board.Height)
	assert.Equal(t, 7, cfg.Board.Width)
	assert.Equal(t, "208", cfg.Players.Two)
	assert.Equal(t, "127.0.0.1:2222", cfg.Server.Address)
	assert.Equal(t, 90*time.Second, cfg.Server.IdleTimeout)
}

func TestLoadRejectsInvalidBoard(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "zero.yaml")
	writeFile(t, path, "board:\n  height: 0\n")

	_, err := Load(path)

	assert.ErrorIs(t, err, ErrInvalidBoard)
}

func TestExpandHome(t *testing.T) {
	home, _ := isolate(t)

	got, err := ExpandHome("~/.connect4/host_key")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".connect4", "host_key"), got)

	got, err = ExpandHome("/etc/key")
	require.NoError(t, err)
	assert.Equal(t, "/etc/key", got)
}
