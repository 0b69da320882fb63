package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/habitflow/habitflow/internal/storage/postgres"
	"github.com/habitflow/habitflow/internal/storage/sqlite"
)

// NewProvider picks a backend from the config string: a PostgreSQL connection
// string selects the postgres store, anything else is treated as a SQLite
// database path.
func NewProvider(config string) Provider {
	if IsPostgresConnStr(config) {
		return postgres.NewStore(config)
	}
	return sqlite.NewStore(ExpandPath(config))
}

// IsPostgresConnStr reports whether the config string is a PostgreSQL
// connection URL.
func IsPostgresConnStr(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Such strings are rejected; credentials belong in the OS
// keyring, the environment, or .pgpass.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// ExpandPath resolves a leading "~/" against the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
