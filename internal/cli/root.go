package cli

import (
	"fmt"
	"strings"

	"github.com/habitflow/habitflow/internal/backup"
	"github.com/habitflow/habitflow/internal/dateutil"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/storage"
)

// Context carries shared dependencies into every command.
type Context struct {
	Store *storage.Hub
}

// PerformAutomaticBackup creates a backup and silently handles errors.
// Only the sqlite backend is backed up; postgres is skipped.
func (c *Context) PerformAutomaticBackup() {
	if storage.IsPostgresConnStr(c.Store.GetConfigPath()) {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Today resolves today's date string using the configured timezone,
// falling back to the system timezone when preferences are unreadable.
func (c *Context) Today() string {
	prefs, err := c.Store.GetPreferences()
	if err != nil {
		return dateutil.Today()
	}
	today, err := dateutil.TodayIn(prefs.Timezone)
	if err != nil {
		logger.Warn("Falling back to system timezone", "timezone", prefs.Timezone, "error", err)
		return dateutil.Today()
	}
	return today
}

// findHabit resolves a habit by ID or case-insensitive title.
func findHabit(habits []models.Habit, ref string) (models.Habit, error) {
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}
	for _, h := range habits {
		if strings.EqualFold(h.Title, ref) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q not found", ref)
}

// findTodo resolves a todo by ID or case-insensitive title.
func findTodo(todos []models.Todo, ref string) (models.Todo, error) {
	for _, t := range todos {
		if t.ID == ref {
			return t, nil
		}
	}
	for _, t := range todos {
		if strings.EqualFold(t.Title, ref) {
			return t, nil
		}
	}
	return models.Todo{}, fmt.Errorf("todo %q not found", ref)
}
