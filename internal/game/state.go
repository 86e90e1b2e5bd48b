package game

import (
	"context"
	"errors"
	"strings"

	"github.com/notepid/baseball/internal/difficulty"
	"github.com/notepid/baseball/internal/guess"
	"github.com/notepid/baseball/internal/record"
)

// Kind tags the variants of State.
type Kind int

const (
	KindMenu Kind = iota + 1
	KindPlay
	KindHistory
	KindRanking
	KindLogout
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindPlay:
		return "play"
	case KindHistory:
		return "history"
	case KindRanking:
		return "ranking"
	case KindLogout:
		return "logout"
	default:
		return "unknown"
	}
}

// State is one phase of a session. Handle performs the phase's interaction
// and returns the state to continue with. A non-nil error ends the session.
type State interface {
	Kind() Kind
	Handle(ctx context.Context, s *Session) (State, error)
}

// MenuOption is a main menu entry.
type MenuOption int

const (
	OptionPlay MenuOption = iota + 1
	OptionHistory
	OptionRanking
	OptionLogout
)

const (
	msgEmptyInput    = "Please enter a value"
	msgInvalidOption = "Please enter a valid option number"
)

// ParseMenuOption turns a typed line into a main menu entry.
func ParseMenuOption(line string) (MenuOption, error) {
	n, err := difficulty.ParseOption(line)
	if err != nil {
		return 0, err
	}
	opt := MenuOption(n)
	if opt < OptionPlay || opt > OptionLogout {
		return 0, difficulty.ErrInvalidOption
	}
	return opt, nil
}

func optionProblem(line string) string {
	if strings.TrimSpace(line) == "" {
		return msgEmptyInput
	}
	return msgInvalidOption
}

// Menu shows the main menu and reads one selection.
type Menu struct{}

func (Menu) Kind() Kind { return KindMenu }

func (Menu) Handle(ctx context.Context, s *Session) (State, error) {
	s.deps.Out.MainMenu(s.User.Username)
	line, err := s.readLine()
	if err != nil {
		return nil, err
	}

	opt, err := ParseMenuOption(line)
	if err != nil {
		s.log.Debug(ctx, "invalid menu option", "input", line)
		s.deps.Out.Problem(optionProblem(line))
		return Menu{}, nil
	}

	switch opt {
	case OptionPlay:
		mode, err := chooseDifficulty(ctx, s)
		if err != nil {
			return nil, err
		}
		return Play{Mode: mode}, nil
	case OptionHistory:
		return History{}, nil
	case OptionRanking:
		return Ranking{}, nil
	case OptionLogout:
		return Logout{}, nil
	}
	return Menu{}, nil
}

// chooseDifficulty prompts until a configured difficulty is selected.
func chooseDifficulty(ctx context.Context, s *Session) (difficulty.Mode, error) {
	for {
		s.deps.Out.DifficultyMenu(s.deps.Modes.Modes())
		line, err := s.readLine()
		if err != nil {
			return difficulty.Mode{}, err
		}

		option, err := difficulty.ParseOption(line)
		if err == nil {
			var mode difficulty.Mode
			mode, err = s.deps.Modes.FindByOption(option)
			if err == nil {
				return mode, nil
			}
		}
		s.log.Debug(ctx, "invalid difficulty option", "input", line)
		s.deps.Out.Problem(optionProblem(line))
	}
}

// Play runs one round at Mode until the secret is guessed.
type Play struct {
	Mode difficulty.Mode
}

func (Play) Kind() Kind { return KindPlay }

func (p Play) Handle(ctx context.Context, s *Session) (State, error) {
	engine, err := s.deps.NewEngine(p.Mode.Length)
	if err != nil {
		s.log.Error(ctx, "cannot start round", "difficulty", p.Mode.Name, "error", err)
		s.deps.Out.Problem("Could not start the game: " + err.Error())
		return Menu{}, nil
	}

	rec := record.New(s.User.NextGameNumber(), p.Mode)
	s.log.Info(ctx, "round started", "game", rec.Number, "difficulty", p.Mode.Name)
	s.deps.Out.RoundStart(p.Mode)

	if err := playRound(ctx, s, engine, rec); err != nil {
		s.log.Info(ctx, "round abandoned", "game", rec.Number, "attempts", rec.Attempts)
		return nil, err
	}

	s.log.Info(ctx, "round finished", "game", rec.Number, "attempts", rec.Attempts)
	s.deps.Out.Win(rec)

	if err := s.User.AddRecord(rec); err != nil {
		s.log.Error(ctx, "cannot add record to history", "error", err)
		return Menu{}, nil
	}
	if err := s.deps.Registry.SaveRecord(ctx, s.User, rec); err != nil {
		s.log.Error(ctx, "cannot save record", "game", rec.Number, "error", err)
		s.deps.Out.Problem("Your result could not be added to the ranking")
	}
	return Menu{}, nil
}

// playRound reads guesses until a home run. Every submitted line counts as
// an attempt, including rejected ones.
func playRound(ctx context.Context, s *Session, engine *guess.Engine, rec *record.GameRecord) error {
	for {
		s.deps.Out.AskGuess(engine.Length(), rec.Attempts+1)
		line, err := s.readLine()
		if err != nil {
			return err
		}
		if err := rec.AddAttempt(); err != nil {
			return err
		}

		score, err := engine.ValidateAndScore(line)
		if err != nil {
			var fe *guess.FormatError
			if !errors.As(err, &fe) {
				return err
			}
			s.log.Debug(ctx, "rejected guess", "reason", fe.Reason, "attempt", rec.Attempts)
			s.deps.Out.Problem(fe.Error())
			continue
		}

		s.deps.Out.Score(score)
		if score.Exact() {
			return rec.Finish(s.deps.Now())
		}
	}
}

// History shows the user's finished games.
type History struct{}

func (History) Kind() Kind { return KindHistory }

func (History) Handle(_ context.Context, s *Session) (State, error) {
	s.deps.Out.History(s.User.Username, s.User.History())
	return Menu{}, nil
}

// Ranking shows the best results of every user.
type Ranking struct{}

func (Ranking) Kind() Kind { return KindRanking }

func (Ranking) Handle(ctx context.Context, s *Session) (State, error) {
	entries, err := s.deps.Registry.Ranking(ctx, s.deps.RankingLimit)
	if err != nil {
		s.log.Error(ctx, "cannot load ranking", "error", err)
		s.deps.Out.Problem("The ranking is not available right now")
		return Menu{}, nil
	}
	s.deps.Out.Ranking(entries)
	return Menu{}, nil
}

// Logout ends the session.
type Logout struct{}

func (Logout) Kind() Kind { return KindLogout }

func (Logout) Handle(_ context.Context, s *Session) (State, error) {
	s.deps.Out.Goodbye(s.User.Username)
	return Logout{}, nil
}
