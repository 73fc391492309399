package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// VerbosityLevel defines the logging verbosity.
type VerbosityLevel int

const (
	Verbose VerbosityLevel = iota
	Info
	Warning
	Error
	Off
)

// ParseVerbosity converts a user-supplied verbosity name into a VerbosityLevel.
func ParseVerbosity(s string) (VerbosityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose":
		return Verbose, nil
	case "info":
		return Info, nil
	case "warning":
		return Warning, nil
	case "error":
		return Error, nil
	case "off":
		return Off, nil
	default:
		return Info, fmt.Errorf("invalid verbosity level '%s' (valid levels are Verbose, Info, Warning, Error, Off)", s)
	}
}

// slogLevel maps a VerbosityLevel to the closest slog level.
// Off is handled separately by discarding output entirely.
func slogLevel(v VerbosityLevel) slog.Level {
	switch v {
	case Verbose:
		return slog.LevelDebug
	case Warning:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w at the given verbosity. The logger is
// injected into each component; nothing in this module logs through a
// package-level default.
func New(w io.Writer, verbosity VerbosityLevel) *slog.Logger {
	if verbosity == Off {
		w = io.Discard
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(verbosity)})
	return slog.New(handler)
}
