package constants

const (
	AppName            = "habitflow"
	Version            = "v0.3.0"
	DefaultConfigPath  = "~/.config/habitflow/habitflow.db"
	DefaultKeyringUser = "database-connection"

	// ConnStrEnvVar overrides the storage location when set.
	ConnStrEnvVar = "HABITFLOW_DB"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Entity field limits
	MaxHabitTitleLength = 100
	MaxTodoTitleLength  = 200

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitflow-"
	BackupFileSuffix = ".db"
)
