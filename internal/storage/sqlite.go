// Package storage provides SQLite-based persistence for the round history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/dodgeball/internal/app"
	"github.com/vovakirdan/dodgeball/internal/dodgeball"
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID         string
	Outcome    string
	Duration   time.Duration
	HumanBalls int
	AIBalls    int
	HumanSpeed int
	AISpeed    int
	HumanSize  int
	AISize     int
	CreatedAt  time.Time
}

// Tally aggregates round outcomes from the human's point of view.
type Tally struct {
	Wins       int
	Losses     int
	Draws      int
	FastestWin time.Duration // Zero when there are no wins
	LastPlayed time.Time
}

// Total returns the number of recorded rounds.
func (t Tally) Total() int {
	return t.Wins + t.Losses + t.Draws
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			outcome TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			human_balls INTEGER NOT NULL DEFAULT 0,
			ai_balls INTEGER NOT NULL DEFAULT 0,
			human_speed INTEGER NOT NULL DEFAULT 0,
			ai_speed INTEGER NOT NULL DEFAULT 0,
			human_size INTEGER NOT NULL DEFAULT 0,
			ai_size INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_outcome ON rounds(outcome);
		CREATE INDEX IF NOT EXISTS idx_rounds_created_at ON rounds(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round. A missing ID is filled with a new UUID.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (id, outcome, duration_ms, human_balls, ai_balls, human_speed, ai_speed, human_size, ai_size)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.Outcome,
		r.Duration.Milliseconds(),
		r.HumanBalls,
		r.AIBalls,
		r.HumanSpeed,
		r.AISpeed,
		r.HumanSize,
		r.AISize,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	return r.ID, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, duration_ms, human_balls, ai_balls,
		        human_speed, ai_speed, human_size, ai_size, created_at
		 FROM rounds
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var durationMS int64
		var createdAt any

		if err := rows.Scan(
			&r.ID,
			&r.Outcome,
			&durationMS,
			&r.HumanBalls,
			&r.AIBalls,
			&r.HumanSpeed,
			&r.AISpeed,
			&r.HumanSize,
			&r.AISize,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Tally counts wins, losses and draws over all recorded rounds.
func (s *Store) Tally() (Tally, error) {
	var t Tally
	var fastest sql.NullInt64

	err := s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		   MIN(CASE WHEN outcome = ? THEN duration_ms END)
		 FROM rounds`,
		dodgeball.HumanWins.String(),
		dodgeball.AIWins.String(),
		dodgeball.Draw.String(),
		dodgeball.HumanWins.String(),
	).Scan(&t.Wins, &t.Losses, &t.Draws, &fastest)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot tally rounds: %w", err)
	}
	if fastest.Valid {
		t.FastestWin = time.Duration(fastest.Int64) * time.Millisecond
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM rounds ORDER BY created_at DESC, rowid DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Tally{}, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		t.LastPlayed = parseTime(lastPlayed)
	}

	return t, nil
}

// ClearRounds deletes the whole history.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// RecordRound implements app.RoundRecorder.
func (s *Store) RecordRound(sum app.RoundSummary) error {
	_, err := s.SaveRound(RoundRecord{
		Outcome:    sum.Outcome.String(),
		Duration:   sum.Duration,
		HumanBalls: sum.HumanBalls,
		AIBalls:    sum.AIBalls,
		HumanSpeed: sum.HumanSpeed,
		AISpeed:    sum.AISpeed,
		HumanSize:  sum.HumanSize,
		AISize:     sum.AISize,
	})
	return err
}

var _ app.RoundRecorder = (*Store)(nil)

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
