package record

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/notepid/baseball/internal/difficulty"
)

// ErrAlreadyFinished is returned when a finished record is changed.
var ErrAlreadyFinished = errors.New("game record already finished")

// GameRecord is the bookkeeping for one playthrough.
type GameRecord struct {
	ID         uuid.UUID
	Number     int // 1-based position in the owner's history
	Difficulty difficulty.Mode
	Attempts   int
	Finished   bool
	FinishedAt time.Time
}

// New starts a record with no attempts.
func New(number int, mode difficulty.Mode) *GameRecord {
	return &GameRecord{
		ID:         uuid.New(),
		Number:     number,
		Difficulty: mode,
	}
}

// AddAttempt counts one submitted guess.
func (r *GameRecord) AddAttempt() error {
	if r.Finished {
		return ErrAlreadyFinished
	}
	r.Attempts++
	return nil
}

// Finish marks the round as won at t. It can only happen once.
func (r *GameRecord) Finish(t time.Time) error {
	if r.Finished {
		return ErrAlreadyFinished
	}
	r.Finished = true
	r.FinishedAt = t
	return nil
}
