package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Debug is set once InitDebugLog has opened debug.log
var Debug bool

// DebugLogPath returns where InitDebugLog writes inside dir.
func DebugLogPath(dir string) string {
	return filepath.Join(dir, "debug.log")
}

// CheckDebug reports whether CHATBOX_DEBUG asks for debug logging
func CheckDebug() bool {
	switch strings.ToLower(os.Getenv("CHATBOX_DEBUG")) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// InitDebugLog points the global zerolog logger at dir/debug.log when
// CHATBOX_DEBUG is set. Otherwise logging is disabled so nothing is written
// over the TUI. The returned closer is never nil.
func InitDebugLog(dir string) io.Closer {
	if !CheckDebug() {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return io.NopCloser(nil)
	}

	logPath := DebugLogPath(dir)

	// 0600: messages and endpoint URLs end up in here
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return io.NopCloser(nil)
	}

	Debug = true
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(f).With().Timestamp().Caller().Logger()
	log.Debug().Str("path", logPath).Msg("=== Debug logging started ===")

	return f
}

// NewConsoleLogger returns the human-readable logger used by the server.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}
