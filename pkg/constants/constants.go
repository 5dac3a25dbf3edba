// Package constants provides shared constants used throughout the mobileapp codebase.
// This includes file names, file permissions, game limits, and timestamp layouts
// that must stay identical between the writers and readers of the flat files.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for the credentials file (rw-------)
	SecureFilePermissions = 0600
)

// Shared data files, relative to the data directory
const (
	// CatalogFile is the backing file of the movie catalog
	CatalogFile = "listmovie.txt"

	// CredentialsFile holds one username,password line per account
	CredentialsFile = "user_credentials.txt"

	// UsersDir holds one folder per registered user
	UsersDir = "user_logs"
)

// Per-user files, relative to the user's folder
const (
	// UserLogFile records logins, logouts and app exits
	UserLogFile = "user_log.txt"

	// TodoFile holds the pending to-do tasks
	TodoFile = "todo_list.txt"

	// CompletedTodoFile holds tasks marked as completed
	CompletedTodoFile = "completed_task.txt"

	// GuessLogFile records number guessing game results
	GuessLogFile = "number_guessing_log.txt"

	// SearchLogFile is the audit file of movie searches
	SearchLogFile = "search_movies.txt"

	// CalculationLogFile records calculator operations
	CalculationLogFile = "calculation_history.txt"
)

// Seed lines written when a user folder is bootstrapped
const (
	UserLogHeader  = "User log started."
	TodoHeader     = "To-Do List (incomplete tasks)"
	GuessLogHeader = "Number Guessing Game Log"
)

// Number guessing game limits
const (
	// GuessMin is the smallest number the game picks
	GuessMin = 1

	// GuessMax is the largest number the game picks
	GuessMax = 100

	// MaxGuesses is the number of attempts per round
	MaxGuesses = 10
)

// TimeFormatLog is the timestamp layout of every per-user log line
const TimeFormatLog = "2006-01-02 15:04:05"
