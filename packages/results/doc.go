// Package results manages run artifacts: the timestamped per-run results
// directory with its run manifest, and the SQLite history index that
// records each run's verification tallies.
package results
