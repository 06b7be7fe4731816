package env

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// HomeVar is the environment variable that points at the root
// framework-benchmarks directory.
const HomeVar = "TFB_HOME"

// ErrInvalidBenchmarksDir is returned when the resolved root does not
// contain a frameworks subdirectory.
var ErrInvalidBenchmarksDir = errors.New("directory does not contain a frameworks subdirectory")

// Dirs abstracts process-wide directory lookups so the resolution chain
// can be substituted in tests without mutating real environment state.
type Dirs interface {
	LookupEnv(key string) (string, bool)
	UserHomeDir() (string, error)
	Getwd() (string, error)
}

// OSDirs is the default Dirs implementation backed by the os package.
type OSDirs struct{}

func (OSDirs) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (OSDirs) UserHomeDir() (string, error)        { return os.UserHomeDir() }
func (OSDirs) Getwd() (string, error)              { return os.Getwd() }

// BenchmarksDir resolves the root framework-benchmarks directory.
//
// Resolution order: the TFB_HOME environment variable, then a .tfb
// directory under the user's home directory, then the current working
// directory if .tfb does not exist. Whatever wins must contain a
// frameworks subdirectory, otherwise ErrInvalidBenchmarksDir is returned.
func BenchmarksDir(dirs Dirs) (string, error) {
	var root string
	if home, ok := dirs.LookupEnv(HomeVar); ok {
		root = home
	} else if homeDir, err := dirs.UserHomeDir(); err == nil {
		root = filepath.Join(homeDir, ".tfb")
		if _, err := os.Stat(root); err != nil {
			if cwd, err := dirs.Getwd(); err == nil {
				root = cwd
			}
		}
	}

	info, err := os.Stat(filepath.Join(root, "frameworks"))
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%s: %w", root, ErrInvalidBenchmarksDir)
	}

	return root, nil
}
