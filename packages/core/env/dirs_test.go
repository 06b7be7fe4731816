package env

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirs substitutes the process-wide lookups in tests.
type fakeDirs struct {
	env  map[string]string
	home string
	cwd  string
}

func (f fakeDirs) LookupEnv(key string) (string, bool) {
	v, ok := f.env[key]
	return v, ok
}

func (f fakeDirs) UserHomeDir() (string, error) {
	if f.home == "" {
		return "", errors.New("no home directory")
	}
	return f.home, nil
}

func (f fakeDirs) Getwd() (string, error) {
	if f.cwd == "" {
		return "", errors.New("no working directory")
	}
	return f.cwd, nil
}

func benchmarksRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "frameworks"), 0o755))
	return root
}

func TestBenchmarksDirFromEnvVar(t *testing.T) {
	root := benchmarksRoot(t)

	dir, err := BenchmarksDir(fakeDirs{env: map[string]string{HomeVar: root}})
	require.NoError(t, err)
	assert.Equal(t, root, dir)
}

func TestBenchmarksDirFromHome(t *testing.T) {
	home := t.TempDir()
	tfb := filepath.Join(home, ".tfb")
	require.NoError(t, os.MkdirAll(filepath.Join(tfb, "frameworks"), 0o755))

	dir, err := BenchmarksDir(fakeDirs{home: home})
	require.NoError(t, err)
	assert.Equal(t, tfb, dir)
}

func TestBenchmarksDirFallsBackToCwd(t *testing.T) {
	// Home exists but has no .tfb directory, so the working directory wins.
	cwd := benchmarksRoot(t)

	dir, err := BenchmarksDir(fakeDirs{home: t.TempDir(), cwd: cwd})
	require.NoError(t, err)
	assert.Equal(t, cwd, dir)
}

func TestBenchmarksDirRequiresFrameworksSubdir(t *testing.T) {
	cases := map[string]fakeDirs{
		"env var":      {env: map[string]string{HomeVar: ""}},
		"home":         {home: ""},
		"cwd fallback": {home: "", cwd: ""},
	}
	for name, dirs := range cases {
		t.Run(name, func(t *testing.T) {
			// Point every source at a directory without frameworks/.
			empty := t.TempDir()
			if _, ok := dirs.env[HomeVar]; ok {
				dirs.env[HomeVar] = empty
			}
			if name == "home" {
				dirs.home = empty
				require.NoError(t, os.MkdirAll(filepath.Join(empty, ".tfb"), 0o755))
			}
			if name == "cwd fallback" {
				dirs.home = t.TempDir()
				dirs.cwd = empty
			}

			_, err := BenchmarksDir(dirs)
			assert.ErrorIs(t, err, ErrInvalidBenchmarksDir)
		})
	}
}
