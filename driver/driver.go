package driver

import (
	"math/big"

	"github.com/typelab/randcheck/rng"
)

// StepFn executes one test at the given size hint and returns its
// result together with the advanced random state.
type StepFn func(size int, st rng.State) (Result, rng.State)

// Spec configures one property run. It is built once by the caller
// before the run starts.
type Spec struct {
	// Property is the textual rendering of the property under test,
	// carried for reporting only.
	Property string
	// Total is the number of tests to run.
	Total int
	// Possible is the size of the argument domain when it is finite,
	// nil otherwise. Copied into the report unchanged.
	Possible *big.Int
	// Step runs a single test.
	Step StepFn
	// Reporter receives the run's callbacks; nil disables reporting.
	Reporter Reporter
}

// Report is the outcome of a whole run, built exactly once: at
// completion or at the first failure.
type Report struct {
	Result        Result
	TestsRun      int
	TestsPossible *big.Int
}

// SizeAt returns the size hint for the i-th zero-indexed test out of
// total: a non-decreasing schedule from small early tests to the hint
// ceiling on the last one.
func SizeAt(i, total int) int {
	return 100 * (i + 1) / total
}

// Run drives up to spec.Total tests, threading the random state
// through the steps and stopping at the first non-passing result.
// Progress is reported before each test. Each step's evaluation is
// individually guarded, so state already produced by earlier tests
// (random-state advancement, reported progress) is preserved exactly
// up to a failing test.
func Run(spec Spec, st rng.State) (Report, rng.State) {
	rep := spec.Reporter
	if rep == nil {
		rep = NopReporter{}
	}
	for done := 0; done < spec.Total; done++ {
		rep.Progress(done, spec.Total)
		res, next := spec.Step(SizeAt(done, spec.Total), st)
		st = next
		if res.Outcome != Pass {
			rep.Failure(res)
			return Report{Result: res, TestsRun: done, TestsPossible: spec.Possible}, st
		}
	}
	rep.Success()
	return Report{Result: Result{Outcome: Pass}, TestsRun: spec.Total, TestsPossible: spec.Possible}, st
}
