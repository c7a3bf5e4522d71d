// Package settings persists the user's exam configuration between
// runs. Storage is a small key-value table in the same SQLite database
// that holds request telemetry.
package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/attafarid/studyai/internal/examgen"
)

const examConfigKey = "exam_config"

// Repo reads and writes persisted settings.
type Repo struct {
	db *sql.DB
}

// NewRepo creates the settings table if needed and returns a Repo over
// the given database handle. The caller owns the handle's lifecycle.
func NewRepo(db *sql.DB) (*Repo, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create settings table: %w", err)
	}
	return &Repo{db: db}, nil
}

// LoadConfig returns the persisted exam configuration, falling back to
// the defaults when nothing is stored or the stored blob no longer
// parses. Load never fails on bad data; corrupt settings behave like a
// fresh install.
func (r *Repo) LoadConfig(ctx context.Context) (examgen.ExamConfig, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", examConfigKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return examgen.DefaultExamConfig(), nil
	}
	if err != nil {
		return examgen.ExamConfig{}, fmt.Errorf("load exam config: %w", err)
	}

	var cfg examgen.ExamConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return examgen.DefaultExamConfig(), nil
	}
	return cfg, nil
}

// SaveConfig persists cfg as the new exam configuration. Saves are
// always explicit; generation never writes settings as a side effect.
func (r *Repo) SaveConfig(ctx context.Context, cfg examgen.ExamConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal exam config: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		examConfigKey, string(raw))
	if err != nil {
		return fmt.Errorf("save exam config: %w", err)
	}
	return nil
}

// Reset deletes the persisted configuration, restoring defaults on the
// next load.
func (r *Repo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM settings WHERE key = ?", examConfigKey)
	if err != nil {
		return fmt.Errorf("reset exam config: %w", err)
	}
	return nil
}
