// Package state persists the few values that outlive a process: the best
// score and the GitHub token entered on a previous run.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	gap "github.com/muesli/go-app-paths"
	_ "modernc.org/sqlite"
)

const (
	keyHighScore = "high_score"
	keyToken     = "token"
)

// Store is a sqlite-backed key/value settings table.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG data location for the settings database.
func DefaultPath() (string, error) {
	scope := gap.NewScope(gap.User, "guessthelang")
	return scope.DataPath("state.db")
}

// Open opens (creating if needed) the settings database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// HighScore returns the stored best score, zero when none exists.
func (s *Store) HighScore(ctx context.Context) (int, error) {
	raw, err := s.get(ctx, keyHighScore)
	if err != nil || raw == "" {
		return 0, err
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("corrupt high score %q: %w", raw, err)
	}
	return score, nil
}

// SetHighScore stores a new best score.
func (s *Store) SetHighScore(ctx context.Context, score int) error {
	return s.set(ctx, keyHighScore, strconv.Itoa(score))
}

// Token returns the stored access token, empty when none exists.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.get(ctx, keyToken)
}

// SetToken stores the access token; an empty value removes it.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if token == "" {
		_, err := s.db.ExecContext(ctx,
			`DELETE FROM settings WHERE key = ?`, keyToken)
		return err
	}
	return s.set(ctx, keyToken, token)
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
