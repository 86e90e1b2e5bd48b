package game

import (
	"context"
	"errors"
	"strings"

	"github.com/notepid/baseball/internal/user"
)

// Lobby selects the user for each session.
type Lobby struct {
	deps Deps
}

// NewLobby creates a lobby sharing deps with the sessions it starts.
func NewLobby(deps Deps) *Lobby {
	return &Lobby{deps: deps.withDefaults()}
}

// Run asks for a username, plays a session as that user and asks again after
// logout. An empty name or "quit" ends the lobby, as does the end of input.
// If first is not empty it is used instead of the first prompt.
// Once ctx is done Run returns ctx.Err() before the next prompt or state.
func (l *Lobby) Run(ctx context.Context, first string) error {
	l.deps.Out.Welcome()

	name := strings.TrimSpace(first)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if name == "" {
			l.deps.Out.AskUsername()
			line, err := readLine(l.deps.In)
			if errors.Is(err, ErrInputClosed) {
				return nil
			}
			if err != nil {
				return err
			}
			name = strings.TrimSpace(line)
			if name == "" || strings.EqualFold(name, "quit") {
				return nil
			}
		}

		u, err := l.deps.Registry.Login(ctx, name)
		name = ""
		if errors.Is(err, user.ErrInvalidUsername) {
			l.deps.Out.Problem("Usernames are 1 to 20 characters long")
			continue
		}
		if err != nil {
			l.deps.Log.Error(ctx, "login failed", "error", err)
			return err
		}

		err = NewSession(u, l.deps).Run(ctx)
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
