package user

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/notepid/baseball/internal/record"
)

// MaxUsernameLen is the longest accepted username, in characters.
const MaxUsernameLen = 20

var (
	// ErrInvalidUsername is returned for empty or overlong usernames.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrUnfinishedRecord is returned when an in-progress record is added to a history.
	ErrUnfinishedRecord = errors.New("record is not finished")
)

// User is a player and the games they finished, in play order.
type User struct {
	ID        int64
	Username  string
	CreatedAt time.Time

	history    []*record.GameRecord
	lastNumber int
}

// New creates a user with an empty history.
func New(id int64, username string) *User {
	return &User{ID: id, Username: username}
}

// NextGameNumber is the number the next record will carry: one past the
// highest number in the history, so gaps left by unsaved games are not reused.
func (u *User) NextGameNumber() int {
	return u.lastNumber + 1
}

// AddRecord appends a finished record to the history.
func (u *User) AddRecord(r *record.GameRecord) error {
	if !r.Finished {
		return ErrUnfinishedRecord
	}
	u.history = append(u.history, r)
	u.lastNumber = max(u.lastNumber, r.Number)
	return nil
}

// History returns the finished records in play order. The slice is a copy.
func (u *User) History() []*record.GameRecord {
	out := make([]*record.GameRecord, len(u.history))
	copy(out, u.history)
	return out
}

// NormalizeUsername trims name and checks its length.
func NormalizeUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("username is empty: %w", ErrInvalidUsername)
	}
	if n := utf8.RuneCountInString(name); n > MaxUsernameLen {
		return "", fmt.Errorf("username has %d characters, at most %d allowed: %w", n, MaxUsernameLen, ErrInvalidUsername)
	}
	return name, nil
}

// RankEntry is one user's best result on one difficulty.
type RankEntry struct {
	Rank         int
	Difficulty   string
	Option       int
	Length       int
	Username     string
	BestAttempts int
	Games        int
	AchievedAt   time.Time
}
