package verify

import (
	"fmt"
	"sort"
	"strings"

	"benchsuite/packages/logging"

	"github.com/fatih/color"
)

// TranscriptName is the fixed file name the summary is appended to inside
// the logger's current log directory.
const TranscriptName = "benchmark.txt"

const borderWidth = 79

// ReportVerifications renders the verification summary for a run. Every
// line goes through the logger, so the colored block shown on the console
// is simultaneously appended, stripped of styling, to the transcript.
//
// Frameworks are sorted by name so the summary is stable across runs;
// within a framework, outcomes keep the order they were supplied in. Only
// the first error or warning of an outcome is surfaced here; the full
// detail lives in the per-test log written during execution.
func ReportVerifications(verifications []Verification, logger logging.Logger) error {
	logger.BindFile(TranscriptName)

	groups := make(map[string][]Verification)
	for _, v := range verifications {
		groups[v.FrameworkName] = append(groups[v.FrameworkName], v)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	cyan := color.New(color.FgCyan).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	border := strings.Repeat("=", borderWidth)
	separator := strings.Repeat("-", borderWidth)

	if err := logger.Log(cyan(border)); err != nil {
		return err
	}
	if err := logger.Log(cyan("Verification Summary")); err != nil {
		return err
	}
	if err := logger.Log(cyan(separator)); err != nil {
		return err
	}

	for _, name := range names {
		if err := logger.Log(fmt.Sprintf("%s %s", cyan("|"), cyan(name))); err != nil {
			return err
		}
		for _, v := range groups[name] {
			typeCol := cyan(fmt.Sprintf("%-13s", v.TypeName))
			var line string
			switch v.Status() {
			case StatusError:
				line = fmt.Sprintf("%s%s: %s - %s", cyan("|       "), typeCol, red("ERROR"), v.Errors[0].ShortMessage)
			case StatusWarn:
				line = fmt.Sprintf("%s%s: %s - %s", cyan("|       "), typeCol, yellow("WARN"), v.Warnings[0].ShortMessage)
			default:
				line = fmt.Sprintf("%s%s: %s", cyan("|       "), typeCol, green("PASS"))
			}
			if err := logger.Log(line); err != nil {
				return err
			}
		}
	}

	return logger.Log(cyan(border))
}
