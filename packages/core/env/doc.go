// Package env resolves the framework-benchmarks root directory for the
// running context. Lookups that touch the process environment go through
// the Dirs interface so tests can swap them out.
package env
