package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/tartampluch/go-greeting/internal/config"
	"github.com/tartampluch/go-greeting/internal/greeter"
	"gopkg.in/natefinch/lumberjack.v2"
)

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing the log file) are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// We configure structured logging (slog) early to capture startup issues.
	// Diagnostics go to stderr and the cache-dir log file; stdout carries only
	// the two-line greeting transcript.
	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the greeter dependencies and emits the greeting to stdout.
func run(ctx context.Context) error {
	g := &greeter.Greeter{
		Clock: greeter.RealClock{},
		Out:   os.Stdout,
	}
	return g.Run(ctx)
}

// printVersion outputs the build information to stdout and exits.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger. It returns the log file
// handle (if one could be opened) so the caller can close it on shutdown.
func setupLogging(debugMode bool) io.Closer {
	// 1. Always write to stderr, never stdout: the greeting transcript on
	// stdout must stay exactly two lines.
	writers := []io.Writer{os.Stderr}
	var closer io.Closer

	// 2. Attempt to set up a rotating file writer in the user's cache directory.
	if logPath, err := getLogFilePath(); err == nil {
		lumber := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    config.LogMaxSizeMB,
			MaxBackups: config.LogMaxBackups,
			Compress:   true,
		}
		writers = append(writers, lumber)
		closer = lumber
	} else {
		fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, err)
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(io.MultiWriter(writers...), &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		AddSource:  debugMode,
	}))
	slog.SetDefault(logger)

	return closer
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
