package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/notepid/baseball/internal/difficulty"
	"github.com/notepid/baseball/internal/guess"
	"github.com/notepid/baseball/internal/logging"
	"github.com/notepid/baseball/internal/record"
	"github.com/notepid/baseball/internal/user"
)

type lines struct {
	queue []string
	read  int
}

func input(ls ...string) *lines { return &lines{queue: ls} }

func (l *lines) ReadLine() (string, error) {
	if l.read >= len(l.queue) {
		return "", io.EOF
	}
	l.read++
	return l.queue[l.read-1], nil
}

type fakeDisplay struct {
	calls    []string
	problems []string
	scores   []guess.Score
	wins     []*record.GameRecord
	history  [][]*record.GameRecord
	ranking  [][]user.RankEntry
}

func (d *fakeDisplay) call(name string) { d.calls = append(d.calls, name) }

func (d *fakeDisplay) Welcome() { d.call("welcome") }
func (d *fakeDisplay) AskUsername() { d.call("ask-username") }
func (d *fakeDisplay) MainMenu(string) { d.call("menu") }
func (d *fakeDisplay) DifficultyMenu([]difficulty.Mode) { d.call("difficulty") }
func (d *fakeDisplay) RoundStart(difficulty.Mode) { d.call("round") }
func (d *fakeDisplay) AskGuess(int, int) { d.call("ask-guess") }
func (d *fakeDisplay) Goodbye(string) { d.call("goodbye") }
func (d *fakeDisplay) Score(s guess.Score) { d.call("score"); d.scores = append(d.scores, s) }
func (d *fakeDisplay) Win(r *record.GameRecord) { d.call("win"); d.wins = append(d.wins, r) }
func (d *fakeDisplay) Ranking(e []user.RankEntry) { d.call("ranking"); d.ranking = append(d.ranking, e) }
func (d *fakeDisplay) Problem(msg string) { d.call("problem"); d.problems = append(d.problems, msg) }
func (d *fakeDisplay) History(_ string, r []*record.GameRecord) {
	d.call("history")
	d.history = append(d.history, r)
}

func (d *fakeDisplay) count(name string) int {
	n := 0
	for _, c := range d.calls {
		if c == name {
			n++
		}
	}
	return n
}

type fakeRegistry struct {
	users      map[string]*user.User
	saved      []*record.GameRecord
	saveErr    error
	rankErr    error
	rankLimits []int
	logins     []string
}

func newRegistry() *fakeRegistry {
	return &fakeRegistry{users: make(map[string]*user.User)}
}

func (r *fakeRegistry) Login(_ context.Context, name string) (*user.User, error) {
	name, err := user.NormalizeUsername(name)
	if err != nil {
		return nil, err
	}
	r.logins = append(r.logins, name)
	key := strings.ToLower(name)
	if u, ok := r.users[key]; ok {
		return u, nil
	}
	u := user.New(int64(len(r.users)+1), name)
	r.users[key] = u
	return u, nil
}

func (r *fakeRegistry) SaveRecord(_ context.Context, _ *user.User, rec *record.GameRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, rec)
	return nil
}

func (r *fakeRegistry) Ranking(_ context.Context, limit int) ([]user.RankEntry, error) {
	r.rankLimits = append(r.rankLimits, limit)
	if r.rankErr != nil {
		return nil, r.rankErr
	}
	return []user.RankEntry{{Rank: 1, Difficulty: "Easy", Username: "alice", BestAttempts: 4, Games: 1}}, nil
}

var (
	clock   = time.Date(2026, 10, 16, 20, 30, 0, 0, time.UTC)
	errBoom = errors.New("boom")
)

type harness struct {
	in       *lines
	out      *fakeDisplay
	registry *fakeRegistry
	deps     Deps
}

// newHarness wires fakes whose engines always hide the secret 1-2-3 padded
// with 4, 5, ... up to the requested length.
func newHarness(t *testing.T, in *lines) *harness {
	t.Helper()
	modes, err := difficulty.NewTable(append(difficulty.Defaults(),
		difficulty.Mode{Option: 9, Name: "Broken", Length: 11}))
	require.NoError(t, err)

	h := &harness{in: in, out: &fakeDisplay{}, registry: newRegistry()}
	h.deps = Deps{
		In:           in,
		Out:          h.out,
		Modes:        modes,
		Registry:     h.registry,
		Log:          logging.Nop(),
		RankingLimit: 5,
		Now:          func() time.Time { return clock },
		NewEngine: func(length int) (*guess.Engine, error) {
			if length > guess.MaxLength {
				return guess.New(length)
			}
			digits := make([]int, length)
			for i := range digits {
				digits[i] = i + 1
			}
			if length == guess.MaxLength {
				digits[length-1] = 0
			}
			return guess.New(length, guess.WithSecret(digits...))
		},
	}
	return h
}

func (h *harness) session(t *testing.T, name string) *Session {
	t.Helper()
	u, err := h.registry.Login(context.Background(), name)
	require.NoError(t, err)
	return NewSession(u, h.deps)
}

func (h *harness) String() string {
	return fmt.Sprintf("calls=%v problems=%v", h.out.calls, h.out.problems)
}
