package user

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/notepid/baseball/internal/difficulty"
	"github.com/notepid/baseball/internal/record"
)

// Repo handles database operations for users and their finished games.
type Repo struct {
	db *sql.DB
}

// NewRepo creates a new user repository.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Login returns the user named username, creating it on first use.
// The history recorded earlier is loaded back into the returned User.
func (r *Repo) Login(ctx context.Context, username string) (*User, error) {
	name, err := NormalizeUsername(username)
	if err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO users (username) VALUES (?)", name); err != nil {
		return nil, fmt.Errorf("create user %s: %w", name, err)
	}

	u, err := r.GetByUsername(ctx, name)
	if err != nil {
		return nil, err
	}

	records, err := r.records(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := u.AddRecord(rec); err != nil {
			return nil, fmt.Errorf("load history of %s: %w", u.Username, err)
		}
	}
	return u, nil
}

// GetByUsername retrieves a user by username (case-insensitive), without history.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*User, error) {
	u := &User{}
	var created sql.NullTime

	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, created_at
		FROM users WHERE username = ? COLLATE NOCASE
	`, username).Scan(&u.ID, &u.Username, &created)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}

	if created.Valid {
		u.CreatedAt = created.Time
	}
	return u, nil
}

// SaveRecord stores a finished record for u.
func (r *Repo) SaveRecord(ctx context.Context, u *User, rec *record.GameRecord) error {
	if !rec.Finished {
		return ErrUnfinishedRecord
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO game_records
			(id, user_id, number, difficulty_option, difficulty_name, secret_length, attempts, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID.String(), u.ID, rec.Number,
		rec.Difficulty.Option, rec.Difficulty.Name, rec.Difficulty.Length,
		rec.Attempts, rec.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("save game %d of %s: %w", rec.Number, u.Username, err)
	}
	return nil
}

func (r *Repo) records(ctx context.Context, userID int64) ([]*record.GameRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, number, difficulty_option, difficulty_name, secret_length, attempts, finished_at
		FROM game_records WHERE user_id = ? ORDER BY number
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list games of user %d: %w", userID, err)
	}
	defer rows.Close()

	var out []*record.GameRecord
	for rows.Next() {
		var (
			id         string
			rec        record.GameRecord
			finishedAt time.Time
		)
		if err := rows.Scan(&id, &rec.Number, &rec.Difficulty.Option, &rec.Difficulty.Name,
			&rec.Difficulty.Length, &rec.Attempts, &finishedAt); err != nil {
			return nil, err
		}
		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("game record id %q: %w", id, err)
		}
		rec.Finished = true
		rec.FinishedAt = finishedAt.Local()
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Ranking returns, for every difficulty, users ordered by their fewest attempts.
// A tie goes to whoever reached it first. At most limit users are listed per
// difficulty; limit <= 0 lists everyone.
func (r *Repo) Ranking(ctx context.Context, limit int) ([]RankEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.difficulty_option, g.difficulty_name, g.secret_length,
		       u.id, u.username, g.attempts, g.finished_at
		FROM game_records g
		JOIN users u ON u.id = g.user_id
		ORDER BY g.difficulty_option, g.attempts, g.finished_at, u.username
	`)
	if err != nil {
		return nil, fmt.Errorf("load ranking: %w", err)
	}
	defer rows.Close()

	type key struct {
		option int
		userID int64
	}
	index := make(map[key]int)
	var entries []RankEntry

	for rows.Next() {
		var (
			mode       difficulty.Mode
			userID     int64
			username   string
			attempts   int
			finishedAt time.Time
		)
		if err := rows.Scan(&mode.Option, &mode.Name, &mode.Length,
			&userID, &username, &attempts, &finishedAt); err != nil {
			return nil, err
		}

		k := key{option: mode.Option, userID: userID}
		if i, ok := index[k]; ok {
			entries[i].Games++
			continue
		}
		index[k] = len(entries)
		entries = append(entries, RankEntry{
			Difficulty:   mode.Name,
			Option:       mode.Option,
			Length:       mode.Length,
			Username:     username,
			BestAttempts: attempts,
			Games:        1,
			AchievedAt:   finishedAt.Local(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rankAndLimit(entries, limit), nil
}

// rankAndLimit numbers entries within each difficulty and drops those past limit.
// entries must already be grouped by difficulty and in ranking order.
func rankAndLimit(entries []RankEntry, limit int) []RankEntry {
	out := make([]RankEntry, 0, len(entries))
	rank, prev := 0, 0
	for i, e := range entries {
		if i == 0 || e.Option != prev {
			rank = 0
		}
		prev = e.Option
		rank++
		if limit > 0 && rank > limit {
			continue
		}
		e.Rank = rank
		out = append(out, e)
	}
	return out
}
