// Package driver evaluates single property tests and runs bounded
// fail-fast test loops over them, reporting progress and outcomes
// through an injected Reporter.
package driver

import "github.com/typelab/randcheck/value"

// Outcome classifies one test.
type Outcome int

const (
	// Pass: the property evaluated to True.
	Pass Outcome = iota
	// FailFalse: the property evaluated to False; Args holds the
	// counterexample.
	FailFalse
	// FailError: forcing the evaluation raised a runtime fault; Err
	// holds it and Args the triggering arguments.
	FailError
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case FailFalse:
		return "false"
	case FailError:
		return "error"
	}
	return "unknown"
}

// Result is the immutable outcome of a single test. Args and Err are
// populated only for the failing outcomes.
type Result struct {
	Outcome Outcome
	Args    []value.Value
	Err     error
}
