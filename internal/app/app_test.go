package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepid/baseball/internal/config"
	"github.com/notepid/baseball/internal/display"
	"github.com/notepid/baseball/internal/terminal"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  output: discard\nranking:\n  limit: 2\n"), 0o600))

	a, cleanup, err := New(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return a
}

func TestNew(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, 2, a.Config.Ranking.Limit)
	assert.Len(t, a.Modes.Modes(), 3)
	require.NoError(t, a.DB.PingContext(context.Background()))
}

func TestNew_LogsConfigSource(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "game.log")
	path := filepath.Join(dir, "config.yaml")
	body := "logging:\n  level: info\n  output: " + logPath + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	a, cleanup, err := New(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, a.ConfigPath)
	cleanup()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"app ready\"")
	assert.Contains(t, string(data), "config="+path)
}

func TestNew_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  color: loud\n"), 0o600))

	_, _, err := New(context.Background(), path)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLobby_ConsoleRoundTrip(t *testing.T) {
	a := newTestApp(t)
	in := strings.NewReader(strings.Join([]string{
		"alice",
		"7", // invalid option
		"2", // history
		"3", // ranking
		"4", // logout
		"quit",
	}, "\n"))
	var out bytes.Buffer

	term := terminal.New(in, &out, false)
	err := a.Lobby(term, display.New(term)).Run(context.Background(), "")
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Please enter a valid option number")
	assert.Contains(t, text, "No games yet.")
	assert.Contains(t, text, "Nobody has finished a game yet.")
	assert.Contains(t, text, "See you next time, alice.")
	assert.NotContains(t, text, "\x1b[")

	u, err := a.Users.GetByUsername(context.Background(), "ALICE")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}
