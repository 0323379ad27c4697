// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

// Package logger provides a thin wrapper around zerolog.Logger used by the
// dataconf command-line tool. The library packages themselves never log;
// only the CLI shell does.
package logger

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding zerolog.Logger
// exposes the full zerolog API while leaving room for helper methods.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label with the level
// parsed from levelName ("debug", "info", "warn", "error"; unknown names
// fall back to info). Output is JSON on stderr, with a timestamp and a
// "func" caller field carrying the fully-qualified function name.
func NewLogger(role, levelName string) *Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(os.Stderr).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output, for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
