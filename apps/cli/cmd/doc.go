// Package cmd implements the benchsuite CLI commands using Cobra.
//
// Available commands:
//   - list: Display frameworks and test implementations
//   - report: Render a verification summary from recorded outcomes
//   - history: Show recent benchmark runs from the history index
//   - version: Show benchsuite version information
package cmd
