package saves

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	player     TEXT NOT NULL,
	level      INTEGER NOT NULL,
	state      TEXT NOT NULL,
	saved_at   INTEGER NOT NULL
)`

// SQLiteRepository stores saves in a single SQLite table
type SQLiteRepository struct {
	db *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// OpenSQLite opens (or creates) the database at path and applies the schema
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, rpgerr.InvalidArgument("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// Close closes the SQLite handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepository) Save(ctx context.Context, slot string, state *entities.GameState) error {
	if err := validateSave(slot, state); err != nil {
		return err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO saves (slot, player, level, state, saved_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		   player = excluded.player,
		   level = excluded.level,
		   state = excluded.state,
		   saved_at = excluded.saved_at`,
		slot,
		state.Player.Name,
		state.Player.Level,
		string(data),
		toMillis(state.SavedAt),
	)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context, slot string) (*entities.GameState, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	var data string
	err := r.db.QueryRowContext(ctx, `SELECT state FROM saves WHERE slot = ?`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(slot)
	}
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}

	var state entities.GameState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "saved game is corrupted").
			WithMeta("slot", slot)
	}
	return &state, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("clear game: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*Summary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT slot, player, level, saved_at FROM saves ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var summaries []*Summary
	for rows.Next() {
		var (
			summary Summary
			savedAt int64
		)
		if err := rows.Scan(&summary.Slot, &summary.Player, &summary.Level, &savedAt); err != nil {
			return nil, fmt.Errorf("scan save: %w", err)
		}
		summary.SavedAt = fromMillis(savedAt)
		summaries = append(summaries, &summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return summaries, nil
}
