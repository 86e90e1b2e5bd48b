package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/notepid/baseball/internal/difficulty"
	"github.com/notepid/baseball/internal/guess"
	"github.com/notepid/baseball/internal/logging"
	"github.com/notepid/baseball/internal/user"
)

// ErrInputClosed is returned when the input source has no more lines.
var ErrInputClosed = errors.New("input closed")

// Deps are the collaborators shared by the lobby and every session.
type Deps struct {
	In           LineReader
	Out          Display
	Modes        *difficulty.Table
	Registry     Registry
	Log          logging.Logger
	RankingLimit int

	// Now and NewEngine default to time.Now and guess.New.
	Now       func() time.Time
	NewEngine func(length int) (*guess.Engine, error)
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewEngine == nil {
		d.NewEngine = func(length int) (*guess.Engine, error) { return guess.New(length) }
	}
	if d.Log == nil {
		d.Log = logging.Nop()
	}
	return d
}

// Session is one logged-in user's run from the main menu to logout.
type Session struct {
	User *user.User

	deps  Deps
	log   logging.Logger
	state State
}

// NewSession starts a session for u in the Menu state.
func NewSession(u *user.User, deps Deps) *Session {
	deps = deps.withDefaults()
	return &Session{
		User:  u,
		deps:  deps,
		log:   deps.Log.With("user", u.Username),
		state: Menu{},
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Run hands control to the current state until Logout has been handled.
// It returns nil after Logout, ErrInputClosed if input ran out first and
// ctx.Err() once ctx is done. A cancelled ctx is noticed between states.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info(ctx, "session started", "games", len(s.User.History()))
	for {
		if err := ctx.Err(); err != nil {
			s.log.Info(ctx, "session interrupted", "state", s.state.Kind(), "error", err)
			return err
		}
		cur := s.state
		next, err := cur.Handle(ctx, s)
		if err != nil {
			s.log.Info(ctx, "session aborted", "state", cur.Kind(), "error", err)
			return err
		}
		if cur.Kind() == KindLogout {
			s.log.Info(ctx, "session ended", "games", len(s.User.History()))
			return nil
		}
		s.log.Debug(ctx, "transition", "from", cur.Kind(), "to", next.Kind())
		s.state = next
	}
}

// readLine reads the next input line, mapping end of input to ErrInputClosed.
func (s *Session) readLine() (string, error) {
	return readLine(s.deps.In)
}

func readLine(in LineReader) (string, error) {
	line, err := in.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}
