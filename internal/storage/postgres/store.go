package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/habitflow/habitflow/internal/models"
)

type Store struct {
	connStr string
	db      *sql.DB
}

func NewStore(connStr string) *Store {
	return &Store{
		connStr: connStr,
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
		reminder_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS habit_dates (
		habit_id TEXT NOT NULL,
		day TEXT NOT NULL,
		PRIMARY KEY (habit_id, day)
	)`,
	`CREATE TABLE IF NOT EXISTS todos (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		amount DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		day TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS preferences (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE,
		theme_mode TEXT NOT NULL DEFAULT 'dark',
		theme_accent TEXT NOT NULL DEFAULT 'teal',
		currency TEXT NOT NULL DEFAULT 'USD',
		timezone TEXT NOT NULL DEFAULT 'Local'
	)`,
}

func (s *Store) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

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

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.connStr
}
