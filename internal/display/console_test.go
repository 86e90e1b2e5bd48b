package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notepid/baseball/internal/difficulty"
	"github.com/notepid/baseball/internal/guess"
	"github.com/notepid/baseball/internal/record"
	"github.com/notepid/baseball/internal/terminal"
	"github.com/notepid/baseball/internal/user"
)

func newConsole(t *testing.T, color bool) (*Console, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(terminal.New(strings.NewReader(""), &buf, color)), &buf
}

func plain(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	return newConsole(t, false)
}

func TestConsole_PlainOutputHasNoEscapes(t *testing.T) {
	c, buf := plain(t)
	c.Welcome()
	c.MainMenu("alice")
	c.DifficultyMenu(difficulty.Defaults())
	c.Problem("Please enter a valid option number")

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Number Baseball")
	assert.Contains(t, out, "1. Play")
	assert.Contains(t, out, "4. Logout")
	assert.Contains(t, out, "3. Hard (5 digits)")
	assert.Contains(t, out, "! Please enter a valid option number")
}

func TestConsole_Score(t *testing.T) {
	tests := []struct {
		score guess.Score
		want  string
	}{
		{guess.Score{Strikes: 1, Balls: 2, Length: 3}, "1 strike 2 balls"},
		{guess.Score{Length: 3}, "Out"},
		{guess.Score{Strikes: 3, Length: 3}, "Home run!"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c, buf := plain(t)
			c.Score(tt.score)
			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}

func TestConsole_Win(t *testing.T) {
	c, buf := plain(t)
	c.Win(&record.GameRecord{Attempts: 1})
	c.Win(&record.GameRecord{Attempts: 7})
	assert.Equal(t, "You got it in 1 attempt!\nYou got it in 7 attempts!\n", buf.String())
}

func TestConsole_History(t *testing.T) {
	c, buf := plain(t)
	c.History("alice", nil)
	assert.Contains(t, buf.String(), "No games yet.")

	buf.Reset()
	rec := record.New(1, difficulty.Mode{Option: 2, Name: "Normal", Length: 4})
	rec.Attempts = 6
	require.NoError(t, rec.Finish(time.Date(2026, 10, 16, 21, 5, 0, 0, time.Local)))
	c.History("alice", []*record.GameRecord{rec})

	out := buf.String()
	assert.Contains(t, out, "Games played by alice")
	assert.Contains(t, out, "Normal")
	assert.Contains(t, out, "2026-10-16 21:05")
	assert.Contains(t, out, "+")
	assert.NotContains(t, out, "No games yet.")
}

func TestConsole_Ranking(t *testing.T) {
	c, buf := plain(t)
	c.Ranking(nil)
	assert.Contains(t, buf.String(), "Nobody has finished a game yet.")

	buf.Reset()
	c.Ranking([]user.RankEntry{
		{Rank: 1, Difficulty: "Easy", Username: "bob", BestAttempts: 3, Games: 2},
		{Rank: 2, Difficulty: "Easy", Username: "alice", BestAttempts: 5, Games: 1},
	})
	lines := strings.Split(buf.String(), "\n")
	var bob, alice int
	for i, l := range lines {
		if strings.Contains(l, "bob") {
			bob = i
		}
		if strings.Contains(l, "alice") {
			alice = i
		}
	}
	assert.Positive(t, bob)
	assert.Less(t, bob, alice)
}

func TestConsole_ColorAddsEscapes(t *testing.T) {
	c, buf := newConsole(t, true)
	c.Problem("boom")
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "boom")
}

func TestConsole_RoundStartClearsScreen(t *testing.T) {
	mode := difficulty.Mode{Option: 1, Name: "Easy", Length: 3}

	c, buf := newConsole(t, true)
	c.RoundStart(mode)
	assert.True(t, strings.HasPrefix(buf.String(), terminal.ClearScreen()))

	c, buf = plain(t)
	c.RoundStart(mode)
	assert.Equal(t, "\nPlay ball! Easy (3 digits)\nI picked 3 different digits.\n", buf.String())
}
