// SPDX-License-Identifier: MIT
// Package logging builds the leveled slog.Logger used by the sparsecalc CLI.
// Operational output goes to stderr so stdout stays reserved for results.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Level names accepted by ParseLevel and the configuration layer.
const (
	LevelNameDebug = "debug"
	LevelNameInfo  = "info"
	LevelNameWarn  = "warn"
	LevelNameError = "error"
)

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "debug", "info", "warn"/"warning", "error" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case LevelNameDebug:
		return slog.LevelDebug
	case LevelNameWarn, "warning":
		return slog.LevelWarn
	case LevelNameError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a level ParseLevel knows (empty counts as info).
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", LevelNameDebug, LevelNameInfo, LevelNameWarn, "warning", LevelNameError:
		return true
	}

	return false
}

// NewLogger creates a leveled text slog.Logger writing to w.
// Timestamps are dropped: the CLI is short-lived and the lines are read by people.
func NewLogger(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything (tests, library callers).
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
