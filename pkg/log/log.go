// Copyright 2025 walteh LLC
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
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 45 // base width for the template path
	charWidth  = 10 // width for the charset label
)

// 🎯 FileOperation represents one processed template for logging
type FileOperation struct {
	Path    string // template path, relative to the template dir
	Charset string // detected character set
	Macros  int    // number of macro substitutions made
}

// 📋 RuleListing is a (tag, description) pair for ListRules
type RuleListing struct {
	Tag         string
	Description string
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	files   int
	macros  int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogFileOperation logs one processed template
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.files++
	l.macros += op.Macros

	var symbol string
	var symbolColor color.Attribute
	if op.Macros > 0 {
		symbol = "✓"
		symbolColor = color.FgGreen
	} else {
		symbol = "-"
		symbolColor = color.FgYellow
	}

	fmt.Fprintf(l.console, "%*s%s %-*s %s %s\n",
		fileIndent, "",
		color.New(symbolColor).Sprint(symbol),
		nameWidth, op.Path,
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", charWidth, op.Charset)),
		substitutionLabel(op.Macros),
	)

	l.zlog.Info().
		Str("file", op.Path).
		Str("charset", op.Charset).
		Int("macros", op.Macros).
		Msg("processed template")
}

func substitutionLabel(n int) string {
	if n == 1 {
		return "1 substitution"
	}
	return fmt.Sprintf("%d substitutions", n)
}

// 📝 ListRules prints the rule table as right-aligned tag/description
// pairs, one per line
func (l *Logger) ListRules(entries []RuleListing) {
	l.mu.Lock()
	defer l.mu.Unlock()

	width := 0
	for _, e := range entries {
		if len(e.Tag) > width {
			width = len(e.Tag)
		}
	}
	for _, e := range entries {
		// pad first, then color, so ANSI codes don't skew alignment
		fmt.Fprintf(l.console, "%s: %s\n",
			color.New(color.FgCyan).Sprint(fmt.Sprintf("%*s", width, e.Tag)),
			e.Description)
	}
}

// 📝 Header logs a run header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("cheatrc")
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

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 🔍 Validation reports a validation result to the user, pterm-styled
func (l *Logger) Validation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		l.zlog.Info().Msg(description)
		return
	}
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
	if err != nil {
		pterm.Error.Println(err)
	}
	l.zlog.Error().Err(err).Msg(description)
}

// Totals returns the files and substitutions seen so far
func (l *Logger) Totals() (files, macros int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.files, l.macros
}
