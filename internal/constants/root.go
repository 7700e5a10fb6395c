package constants

const (
	AppName            = "gantt"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/gantt/gantt.db"
	DefaultChartPath   = "~/.config/gantt/chart.yaml"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the year-month format used for chart ranges (YYYY-MM)
	MonthFormat = "2006-01"

	// MonthLabelFormat is used for month header labels
	MonthLabelFormat = "2006/01"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "gantt-"
	BackupFileSuffix = ".db"

	// Session lock
	LockfileName = "gantt.lock"
)
