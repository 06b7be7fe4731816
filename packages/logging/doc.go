// Package logging provides the dual-sink Logger used throughout a
// benchmark run: colored, prefixed output on the console and a plain-text
// transcript appended to a per-test log file.
//
// Directory and file setup is best effort: a failed rescope or bind
// degrades the Logger to console-only rather than aborting the run it is
// observing. Writes to an already-bound file are not best effort; their
// errors surface to the caller.
package logging
