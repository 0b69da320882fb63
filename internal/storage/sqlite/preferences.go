package sqlite

import (
	"github.com/habitflow/habitflow/internal/models"
)

func (s *Store) GetPreferences() (models.Preferences, error) {
	row := s.db.QueryRow(`
		SELECT onboarding_completed, theme_mode, theme_accent, currency, timezone
		FROM preferences WHERE id = 1`)

	var p models.Preferences
	var onboarding int
	err := row.Scan(&onboarding, &p.ThemeMode, &p.ThemeAccent, &p.Currency, &p.Timezone)
	if err != nil {
		return models.Preferences{}, err
	}
	p.OnboardingCompleted = onboarding != 0
	return p, nil
}

func (s *Store) SavePreferences(p models.Preferences) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (id, onboarding_completed, theme_mode, theme_accent, currency, timezone)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			onboarding_completed = excluded.onboarding_completed,
			theme_mode = excluded.theme_mode,
			theme_accent = excluded.theme_accent,
			currency = excluded.currency,
			timezone = excluded.timezone`,
		boolToInt(p.OnboardingCompleted), p.ThemeMode, p.ThemeAccent, p.Currency, p.Timezone)
	return err
}
