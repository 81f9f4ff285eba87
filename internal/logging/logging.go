// Package logging builds the process logger. Output goes to stderr so the
// shell's own rendering keeps stdout to itself.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls handler construction.
type Config struct {
	Level string // debug, info, warn or error; anything else means info
	JSON  bool   // machine-readable records instead of text
	Quiet bool   // discard everything
}

// New returns a logger writing to stderr per the config.
func New(config Config) *slog.Logger {
	var out io.Writer = os.Stderr
	if config.Quiet {
		out = io.Discard
	}
	return slog.New(newHandler(out, config))
}

func newHandler(out io.Writer, config Config) slog.Handler {
	options := &slog.HandlerOptions{Level: parseLevel(config.Level)}
	if config.JSON {
		return slog.NewJSONHandler(out, options)
	}
	return slog.NewTextHandler(out, options)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
