package game

import (
	"context"

	"github.com/notepid/baseball/internal/difficulty"
	"github.com/notepid/baseball/internal/guess"
	"github.com/notepid/baseball/internal/record"
	"github.com/notepid/baseball/internal/user"
)

// LineReader supplies one line of user input per call. A blank line is "".
type LineReader interface {
	ReadLine() (string, error)
}

// Display renders everything the player sees. It only receives data.
type Display interface {
	Welcome()
	AskUsername()
	MainMenu(username string)
	DifficultyMenu(modes []difficulty.Mode)
	RoundStart(mode difficulty.Mode)
	AskGuess(length, attempt int)
	Score(s guess.Score)
	Win(rec *record.GameRecord)
	History(username string, records []*record.GameRecord)
	Ranking(entries []user.RankEntry)
	Problem(msg string)
	Goodbye(username string)
}

// Registry knows every user of this run and their finished games.
type Registry interface {
	Login(ctx context.Context, username string) (*user.User, error)
	SaveRecord(ctx context.Context, u *user.User, rec *record.GameRecord) error
	Ranking(ctx context.Context, limit int) ([]user.RankEntry, error)
}
