package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ecotrack/ecotrack-cli/internal/models"
)

// Cache is the local snapshot store. It holds the last server-confirmed
// user state and achievements so a fresh session can render something
// before the first fetch resolves, plus the last check-in day, which never
// round-trips to the network.
type Cache struct {
	path string
	db   *sql.DB
}

// NewCache creates a cache backed by the sqlite file at path. The file and
// its directory are created on Open.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Open opens the database and creates the schema if needed.
func (c *Cache) Open() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", c.path)
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	c.db = db

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshot (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			user_json TEXT NOT NULL,
			achievements_json TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create cache schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// SaveSnapshot persists the latest server-confirmed state wholesale.
func (c *Cache) SaveSnapshot(user models.UserState, achievements []models.Achievement) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return err
	}
	achJSON, err := json.Marshal(achievements)
	if err != nil {
		return err
	}

	_, err = c.db.Exec(`
		INSERT INTO snapshot (id, user_json, achievements_json, fetched_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_json = excluded.user_json,
			achievements_json = excluded.achievements_json,
			fetched_at = excluded.fetched_at`,
		string(userJSON), string(achJSON), time.Now().Format(time.RFC3339))
	return err
}

// LoadSnapshot returns the cached state, if any. The boolean reports
// whether a snapshot was present.
func (c *Cache) LoadSnapshot() (models.UserState, []models.Achievement, bool, error) {
	row := c.db.QueryRow(`SELECT user_json, achievements_json FROM snapshot WHERE id = 1`)

	var userJSON, achJSON string
	err := row.Scan(&userJSON, &achJSON)
	if err == sql.ErrNoRows {
		return models.UserState{}, nil, false, nil
	}
	if err != nil {
		return models.UserState{}, nil, false, err
	}

	var user models.UserState
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return models.UserState{}, nil, false, fmt.Errorf("failed to parse cached user state: %w", err)
	}
	var achievements []models.Achievement
	if err := json.Unmarshal([]byte(achJSON), &achievements); err != nil {
		return models.UserState{}, nil, false, fmt.Errorf("failed to parse cached achievements: %w", err)
	}
	return user, achievements, true, nil
}

// SaveCheckinDate records the calendar day of the last questionnaire
// submission.
func (c *Cache) SaveCheckinDate(day string) error {
	_, err := c.db.Exec(`
		INSERT INTO meta (key, value) VALUES ('last_checkin', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, day)
	return err
}

// CheckinDate returns the stored check-in day, or "" when none is recorded.
func (c *Cache) CheckinDate() (string, error) {
	row := c.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_checkin'`)
	var day string
	err := row.Scan(&day)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return day, nil
}
