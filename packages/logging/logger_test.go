package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forceColor makes fatih/color emit escape codes even without a TTY so
// strip behavior is observable.
func forceColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })
}

func boundLogger(t *testing.T, out *bytes.Buffer) Logger {
	t.Helper()
	logger := New(InDir(t.TempDir()), WithWriter(out))
	require.Equal(t, ScopeApplied, logger.ScopeToTest("gemini"))
	require.Equal(t, BindApplied, logger.BindFile("benchmark.txt"))
	return logger
}

func TestLogStripsColorFromTranscript(t *testing.T) {
	forceColor(t)
	var out bytes.Buffer
	logger := boundLogger(t, &out)

	cyan := color.New(color.FgCyan).SprintFunc()
	require.NoError(t, logger.Log(cyan("starting json verification")))

	data, err := os.ReadFile(logger.LogFile())
	require.NoError(t, err)
	assert.Equal(t, "starting json verification\n", string(data))

	// Console keeps the styling and the bold prefix.
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "gemini")
	assert.Contains(t, out.String(), "starting json verification")
}

func TestLogDropsBlankLines(t *testing.T) {
	var out bytes.Buffer
	logger := boundLogger(t, &out)

	require.NoError(t, logger.Log("first\n\n   \nsecond\n"))

	data, err := os.ReadFile(logger.LogFile())
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestLogAppendsWithoutDeduplication(t *testing.T) {
	var out bytes.Buffer
	logger := boundLogger(t, &out)

	require.NoError(t, logger.Log("same line"))
	require.NoError(t, logger.Log("same line"))

	data, err := os.ReadFile(logger.LogFile())
	require.NoError(t, err)
	assert.Equal(t, "same line\nsame line\n", string(data))
}

func TestQuietSuppressesConsoleOnly(t *testing.T) {
	var out bytes.Buffer
	logger := boundLogger(t, &out)
	logger.Quiet = true

	require.NoError(t, logger.Log("recorded but not printed"))

	data, err := os.ReadFile(logger.LogFile())
	require.NoError(t, err)
	assert.Equal(t, "recorded but not printed\n", string(data))
	assert.Empty(t, out.String())
}

func TestErrorPaintsConsoleRed(t *testing.T) {
	forceColor(t)
	var out bytes.Buffer
	logger := boundLogger(t, &out)

	require.NoError(t, logger.Error("container exited early"))

	data, err := os.ReadFile(logger.LogFile())
	require.NoError(t, err)
	assert.Equal(t, "container exited early\n", string(data))
	assert.Contains(t, out.String(), "\x1b[31m")
}

func TestScopeWithoutDirIsConsoleOnly(t *testing.T) {
	var out bytes.Buffer
	logger := New(WithWriter(&out))

	assert.Equal(t, ScopeConsoleOnly, logger.ScopeToTest("gemini"))
	assert.Equal(t, BindSkipped, logger.BindFile("benchmark.txt"))
	assert.Empty(t, logger.LogFile())

	// Still logs to the console with the new prefix.
	require.NoError(t, logger.Log("hello"))
	assert.Contains(t, out.String(), "gemini")
}

func TestScopeDirFailureLeavesDirUntouched(t *testing.T) {
	dir := t.TempDir()
	// Occupy the subdirectory name with a regular file so MkdirAll fails.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gemini"), []byte("x"), 0o644))

	logger := New(InDir(dir))
	assert.Equal(t, ScopeDirFailed, logger.ScopeToTest("gemini"))
	assert.Equal(t, dir, logger.LogDir())
}

func TestLogTrimsTrailingWhitespaceOnConsole(t *testing.T) {
	var out bytes.Buffer
	logger := New(WithWriter(&out))

	require.NoError(t, logger.Log("padded line   \t"))
	assert.Equal(t, "padded line\n", out.String())
}

func TestCopiedLoggerOwnsItsOwnFile(t *testing.T) {
	var out bytes.Buffer
	base := New(InDir(t.TempDir()), WithWriter(&out))

	clone := base
	require.Equal(t, ScopeApplied, clone.ScopeToTest("gemini"))
	require.Equal(t, BindApplied, clone.BindFile("benchmark.txt"))

	assert.Empty(t, base.LogFile())
	assert.NotEmpty(t, clone.LogFile())
}
