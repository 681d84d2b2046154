// Copyright 2025 mktree authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent entry lines
	nameWidth   = 35 // base width for entry path
	kindWidth   = 18 // width for operation kind
)

// 🎯 EntryOperation represents one tree entry operation for logging
type EntryOperation struct {
	Path       string // path relative to the run's root
	Kind       string // create-file / create-directory / copy / move
	IsCreated  bool   // the entry was created this run
	IsSkipped  bool   // something already existed, left untouched
	IsFallback bool   // the operation failed and fell back to an empty file
}

// 🎯 Logger handles structured logging with colored console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	verbose bool
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level, verbose bool) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		verbose: verbose,
	}
}

// 🏭 NewDiscard creates a logger that swallows everything. Used when the
// caller wants a run with no console output at all.
func NewDiscard() *Logger {
	return &Logger{
		zlog:    zerolog.Nop(),
		console: io.Discard,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, falling back to a discard
// logger so library callers never have to install one.
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		return NewDiscard()
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatEntryOperation formats an entry operation for display
func (l *Logger) formatEntryOperation(op EntryOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	var status string
	switch {
	case op.IsFallback:
		symbol = '⟳'
		symbolColor = color.FgRed
		status = "fallback"
	case op.IsSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
		status = "skipped"
	case op.IsCreated:
		symbol = '✓'
		symbolColor = color.FgGreen
		status = "created"
	default:
		symbol = '•'
		symbolColor = color.FgCyan
		status = "done"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", entryIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(color.FgBlue).Sprint(fmt.Sprintf("%-*s", kindWidth, op.Kind)),
		status)
}

// 📝 LogEntryOperation logs one entry operation. Non-fallback lines only
// show up in verbose mode.
func (l *Logger) LogEntryOperation(ctx context.Context, op EntryOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.verbose || op.IsFallback {
		fmt.Fprintln(l.console, l.formatEntryOperation(op))
	}

	l.zlog.Info().
		Str("entry", op.Path).
		Str("kind", op.Kind).
		Bool("is_created", op.IsCreated).
		Bool("is_skipped", op.IsSkipped).
		Bool("is_fallback", op.IsFallback).
		Msg("entry operation")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("mktree")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message. Only shown in verbose mode.
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.verbose {
		fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	}
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
