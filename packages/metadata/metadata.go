package metadata

import (
	"fmt"
	"io"

	"benchsuite/packages/core/env"
)

// Named is implemented by any entity with a display name.
type Named interface {
	GetName() string
}

// Test is one test implementation declared by a framework's config.
type Test struct {
	Name      string
	Framework string
	Tags      []string
}

func (t Test) GetName() string { return t.Name }

// HasTag reports whether the test declares the given tag.
func (t Test) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// Framework groups the test implementations sharing one stack.
type Framework struct {
	Name  string
	Tests []Test
}

func (f Framework) GetName() string { return f.Name }

// Index is the set of frameworks discovered under a benchmarks root.
type Index struct {
	frameworks []Framework
}

// AllFrameworks returns the discovered frameworks in walk order.
func (ix *Index) AllFrameworks() []Framework {
	return ix.frameworks
}

// AllTests returns every test of every framework in walk order.
func (ix *Index) AllTests() []Test {
	var tests []Test
	for _, fw := range ix.frameworks {
		tests = append(tests, fw.Tests...)
	}
	return tests
}

// TestsByTag returns the tests declaring the given tag.
func (ix *Index) TestsByTag(tag string) []Test {
	var tests []Test
	for _, test := range ix.AllTests() {
		if test.HasTag(tag) {
			tests = append(tests, test)
		}
	}
	return tests
}

// TestsForFramework returns the tests of the named framework. An unknown
// name yields an empty list.
func (ix *Index) TestsForFramework(name string) []Test {
	var tests []Test
	for _, fw := range ix.frameworks {
		if fw.Name == name {
			tests = append(tests, fw.Tests...)
		}
	}
	return tests
}

// ListAllFrameworks resolves the benchmarks root and lists every framework
// declared beneath it.
func ListAllFrameworks() ([]Framework, error) {
	ix, err := discoverDefault()
	if err != nil {
		return nil, err
	}
	return ix.AllFrameworks(), nil
}

// ListAllTests resolves the benchmarks root and lists every test.
func ListAllTests() ([]Test, error) {
	ix, err := discoverDefault()
	if err != nil {
		return nil, err
	}
	return ix.AllTests(), nil
}

// ListTestsByTag resolves the benchmarks root and lists the tests carrying
// the given tag.
func ListTestsByTag(tag string) ([]Test, error) {
	ix, err := discoverDefault()
	if err != nil {
		return nil, err
	}
	return ix.TestsByTag(tag), nil
}

// ListTestsForFramework resolves the benchmarks root and lists the tests
// of one framework.
func ListTestsForFramework(name string) ([]Test, error) {
	ix, err := discoverDefault()
	if err != nil {
		return nil, err
	}
	return ix.TestsForFramework(name), nil
}

func discoverDefault() (*Index, error) {
	root, err := env.BenchmarksDir(env.OSDirs{})
	if err != nil {
		return nil, err
	}
	return Discover(root)
}

// PrintNames writes each entity's name on its own line. The error, when
// non-nil, is propagated unchanged so the four listing entry points stay
// one-liners.
func PrintNames[T Named](list []T, err error, w io.Writer) error {
	if err != nil {
		return err
	}
	for _, entity := range list {
		fmt.Fprintln(w, entity.GetName())
	}
	return nil
}
