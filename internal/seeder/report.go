package seeder

import "fmt"

// Policy decides what happens after a record fails.
type Policy string

const (
	// PolicyAbort stops at the first failing record. Earlier records stay committed.
	PolicyAbort Policy = "abort"
	// PolicyContinue records the failure and moves on to the next record.
	PolicyContinue Policy = "continue"
)

// ParsePolicy accepts "abort" or "continue". Empty means abort.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicyContinue:
		return PolicyContinue, nil
	}
	return "", fmt.Errorf("unknown failure policy %q", s)
}

// State of a seeding run.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateCompleted
	StateFailed
)

// String returns the snake_case name used in logs.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Result is the outcome of one attempted record. Committed can be true
// together with a non-nil Err when the row was stored but the confirmation
// line could not be written.
type Result struct {
	Identifier  string
	DisplayName string
	Role        string
	Committed   bool
	Err         error
}

// OK reports whether the record was committed and confirmed.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report lists the attempted records in order. Records skipped after an
// abort do not appear.
type Report struct {
	RunID   string
	State   State
	Results []Result
}

// Inserted counts committed records, confirmed or not.
func (r *Report) Inserted() int {
	n := 0
	for _, res := range r.Results {
		if res.Committed {
			n++
		}
	}
	return n
}

// Failed counts attempted records that did not complete.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// NotAttempted counts records of a list of total that the run never reached.
func (r *Report) NotAttempted(total int) int {
	return total - len(r.Results)
}
