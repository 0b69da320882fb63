package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/habitflow/habitflow/internal/models"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		frequency TEXT NOT NULL DEFAULT 'daily',
		color_theme TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		reminder_time TEXT NOT NULL DEFAULT '',
		reminder_enabled INTEGER NOT NULL DEFAULT 0,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS habit_dates (
		habit_id TEXT NOT NULL,
		day TEXT NOT NULL,
		PRIMARY KEY (habit_id, day)
	)`,
	`CREATE TABLE IF NOT EXISTS todos (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		amount REAL NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		day TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS preferences (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		onboarding_completed INTEGER NOT NULL DEFAULT 0,
		theme_mode TEXT NOT NULL DEFAULT 'dark',
		theme_accent TEXT NOT NULL DEFAULT 'teal',
		currency TEXT NOT NULL DEFAULT 'USD',
		timezone TEXT NOT NULL DEFAULT 'Local'
	)`,
}

func (s *Store) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	// Seed the singleton preferences row
	if _, err := s.GetPreferences(); err != nil {
		defaults := models.Preferences{
			ThemeMode:   "dark",
			ThemeAccent: "teal",
			Currency:    "USD",
			Timezone:    "Local",
		}
		if err := s.SavePreferences(defaults); err != nil {
			return fmt.Errorf("failed to save default preferences: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitflow init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}
