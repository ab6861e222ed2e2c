package config

import "io/fs"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Greeting"
	AppID       = "com.github.tartampluch.go-greeting"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the log file.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the cache directory.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// Log Rotation
// -----------------------------------------------------------------------------

const (
	// LogMaxSizeMB caps a single log file before rotation kicks in.
	LogMaxSizeMB = 5

	// LogMaxBackups limits how many rotated files are kept around.
	LogMaxBackups = 2
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Output Contract
// -----------------------------------------------------------------------------

// These constants define the observable stdout contract: exactly two
// newline-terminated lines. Diagnostics must never be mixed into stdout.
const (
	// GreetingLine is the first output line, emitted verbatim.
	GreetingLine = "Hello! Welcome to Python!"

	// TimestampPrefix introduces the second output line.
	TimestampPrefix = "Today's date and time: "

	// TimestampLayout renders the wall-clock read as a zero-padded,
	// 24-hour, four-digit-year timestamp. Sub-second precision is dropped.
	TimestampLayout = "2006-01-02 15:04:05"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrWriteOutput = "failed to write to output stream"
	ErrLogFile     = "failed to set up log file"
	ErrCacheDir    = "could not determine user cache dir"
	ErrCreateDir   = "could not create app cache dir"
	ErrAppFailed   = "application failed unexpectedly"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting  = "Starting application"
	MsgAppStop      = "Application stopped gracefully"
	MsgGreetingDone = "Greeting emitted"
	MsgLogWarning   = "Warning: %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyTimestamp = "timestamp"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain    = "main"
	CompGreeter = "greeter"
)
