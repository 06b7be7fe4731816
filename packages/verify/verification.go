// Package verify holds the verification outcomes produced for each test
// and renders the end-of-run summary through the logging package.
package verify

// Message is a single error or warning attached to a verification.
type Message struct {
	// ShortMessage is the one-line form surfaced in the summary.
	ShortMessage string `json:"shortMessage"`
	// Message carries the full detail, already written to the per-test
	// transcript during execution.
	Message string `json:"message,omitempty"`
}

// Verification is the outcome of checking one test type's behavior
// against its expectation. The JSON shape is what the execution engine
// writes to its outcomes file.
type Verification struct {
	FrameworkName string    `json:"frameworkName"`
	TypeName      string    `json:"typeName"`
	Errors        []Message `json:"errors,omitempty"`
	Warnings      []Message `json:"warnings,omitempty"`
}

// Status classifies a verification for reporting.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "ERROR"
	case StatusWarn:
		return "WARN"
	default:
		return "PASS"
	}
}

// Status reports the verification's severity. Any error outweighs any
// number of warnings.
func (v Verification) Status() Status {
	if len(v.Errors) > 0 {
		return StatusError
	}
	if len(v.Warnings) > 0 {
		return StatusWarn
	}
	return StatusPass
}

// Totals counts verifications by status.
type Totals struct {
	Passed  int
	Warned  int
	Errored int
}

// Count tallies a run's verifications for the history index.
func Count(verifications []Verification) Totals {
	var t Totals
	for _, v := range verifications {
		switch v.Status() {
		case StatusError:
			t.Errored++
		case StatusWarn:
			t.Warned++
		default:
			t.Passed++
		}
	}
	return t
}
