package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
)

// Logger writes line-oriented output to the console and optionally to a
// transcript file. The console copy keeps any embedded color styling; the
// file copy has ANSI escape sequences stripped so the transcript stays
// grep-able.
//
// A Logger is a plain value and is not safe for concurrent use: the file
// handle is opened per write with no internal locking. A goroutine that
// needs its own transcript should copy the Logger value and bind its own
// file on the copy.
type Logger struct {
	prefix  string
	logDir  string
	logFile string
	out     io.Writer

	// Quiet suppresses console output; the file copy is still written.
	Quiet bool
}

// Option configures a Logger at construction time.
type Option func(*Logger)

// WithPrefix sets the bold prefix prepended to every console line.
func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.prefix = prefix
	}
}

// InDir roots the Logger at a log directory. Any transcript file the
// Logger binds later is created beneath it.
func InDir(dir string) Option {
	return func(l *Logger) {
		l.logDir = dir
	}
}

// WithWriter sets the console writer. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithQuiet suppresses console output.
func WithQuiet(quiet bool) Option {
	return func(l *Logger) {
		l.Quiet = quiet
	}
}

// New creates a Logger. With no options it prints to stdout only.
func New(opts ...Option) Logger {
	l := Logger{
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// ScopeStatus reports what ScopeToTest actually did, so call sites can
// assert on the skip path instead of relying on absence of a crash.
type ScopeStatus int

const (
	// ScopeApplied means the log directory now points at the test's
	// subdirectory.
	ScopeApplied ScopeStatus = iota
	// ScopeConsoleOnly means no log directory was configured; only the
	// prefix changed.
	ScopeConsoleOnly
	// ScopeDirFailed means the subdirectory could not be created; the
	// previous log directory is left untouched.
	ScopeDirFailed
)

// ScopeToTest points the Logger at a test: the console prefix becomes the
// test's name, and if a log directory is configured it is replaced by a
// subdirectory named after the test, created on demand.
//
// Example: with log directory /results/20200619191252, scoping to "gemini"
// moves the log directory to /results/20200619191252/gemini.
func (l *Logger) ScopeToTest(testName string) ScopeStatus {
	l.prefix = testName

	if l.logDir == "" {
		return ScopeConsoleOnly
	}

	dir := filepath.Join(l.logDir, testName)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ScopeDirFailed
		}
	}
	l.logDir = dir

	return ScopeApplied
}

// BindStatus reports what BindFile actually did.
type BindStatus int

const (
	// BindApplied means future Log calls append to the bound file.
	BindApplied BindStatus = iota
	// BindSkipped means no log directory was configured.
	BindSkipped
	// BindCreateFailed means the file could not be created; the Logger
	// stays console-only.
	BindCreateFailed
)

// BindFile binds the transcript to fileName inside the configured log
// directory, creating an empty file if none exists. Without a log
// directory this is a no-op.
func (l *Logger) BindFile(fileName string) BindStatus {
	if l.logDir == "" {
		return BindSkipped
	}

	path := filepath.Join(l.logDir, fileName)
	if _, err := os.Stat(path); err != nil {
		f, err := os.Create(path)
		if err != nil {
			return BindCreateFailed
		}
		_ = f.Close()
	}
	l.logFile = path

	return BindApplied
}

// LogDir returns the configured log directory, if any.
func (l Logger) LogDir() string { return l.logDir }

// LogFile returns the bound transcript path, if any.
func (l Logger) LogFile() string { return l.logFile }

// Log writes each non-blank line of text to the bound transcript file
// (colors stripped) and, unless quiet, to the console. Blank and
// whitespace-only lines are dropped from both sinks. A configured file
// sink must be reliable, so file errors are returned rather than
// swallowed.
func (l Logger) Log(text any) error {
	for _, line := range strings.Split(fmt.Sprint(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if l.logFile != "" {
			if err := l.appendToFile(ansi.Strip(line)); err != nil {
				return err
			}
		}

		if !l.Quiet {
			if l.prefix != "" {
				bold := color.New(color.Bold).SprintFunc()
				fmt.Fprintf(l.out, "%s: ", bold(l.prefix))
			}
			fmt.Fprintln(l.out, strings.TrimRight(line, " \t\r"))
		}
	}
	return nil
}

// Error is Log with the console copy rendered red. The file copy is still
// stripped of styling.
func (l Logger) Error(text any) error {
	red := color.New(color.FgRed).SprintFunc()
	return l.Log(red(fmt.Sprint(text)))
}

func (l Logger) appendToFile(line string) error {
	f, err := os.OpenFile(l.logFile, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open transcript %s: %w", l.logFile, err)
	}
	_, werr := f.WriteString(line + "\n")
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("failed to write transcript %s: %w", l.logFile, werr)
	}
	if cerr != nil {
		return fmt.Errorf("failed to close transcript %s: %w", l.logFile, cerr)
	}
	return nil
}
