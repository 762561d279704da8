package driver

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typelab/randcheck/generator"
	"github.com/typelab/randcheck/rng"
	"github.com/typelab/randcheck/value"
)

// recordingReporter captures every callback for assertions.
type recordingReporter struct {
	progress  [][2]int
	failures  []Result
	successes int
}

func (r *recordingReporter) Progress(done, total int) {
	r.progress = append(r.progress, [2]int{done, total})
}
func (r *recordingReporter) Failure(res Result) { r.failures = append(r.failures, res) }
func (r *recordingReporter) Success()           { r.successes++ }

func TestSizeSchedule(t *testing.T) {
	total := 37
	prev := 0
	for i := 0; i < total; i++ {
		s := SizeAt(i, total)
		require.GreaterOrEqual(t, s, prev, "size schedule must be non-decreasing")
		prev = s
	}
	assert.Equal(t, 100, SizeAt(total-1, total), "last test runs at the hint ceiling")
	assert.Equal(t, 10, SizeAt(0, 10))
}

func TestRunAllPass(t *testing.T) {
	rep := &recordingReporter{}
	steps := 0
	spec := Spec{
		Property: "always true",
		Total:    10,
		Step: func(size int, st rng.State) (Result, rng.State) {
			steps++
			return Result{Outcome: Pass}, st
		},
		Reporter: rep,
	}
	report, _ := Run(spec, rng.New(0))

	assert.Equal(t, Pass, report.Result.Outcome)
	assert.Equal(t, 10, report.TestsRun)
	assert.Equal(t, 10, steps)
	assert.Len(t, rep.progress, 10)
	assert.Equal(t, 1, rep.successes)
	assert.Empty(t, rep.failures)
}

func TestRunFailFast(t *testing.T) {
	// Test index 3 (zero-indexed) is the first non-Pass: the driver
	// reports exactly 4 progress events, invokes the failure hook once,
	// and never runs the remaining budget.
	rep := &recordingReporter{}
	steps := 0
	spec := Spec{
		Property: "fails at index 3",
		Total:    10,
		Step: func(size int, st rng.State) (Result, rng.State) {
			idx := steps
			steps++
			if idx == 3 {
				return Result{Outcome: FailFalse}, st
			}
			return Result{Outcome: Pass}, st
		},
		Reporter: rep,
	}
	report, _ := Run(spec, rng.New(0))

	assert.Equal(t, FailFalse, report.Result.Outcome)
	assert.Equal(t, 3, report.TestsRun)
	assert.Equal(t, 4, steps, "no test after the failing one may run")
	require.Len(t, rep.progress, 4)
	for i, p := range rep.progress {
		assert.Equal(t, [2]int{i, 10}, p)
	}
	require.Len(t, rep.failures, 1)
	assert.Equal(t, FailFalse, rep.failures[0].Outcome)
	assert.Zero(t, rep.successes)
}

func TestRunErrorIsTerminalToo(t *testing.T) {
	rep := &recordingReporter{}
	spec := Spec{
		Total: 5,
		Step: func(size int, st rng.State) (Result, rng.State) {
			return Result{Outcome: FailError, Err: value.DivByZero("(/)")}, st
		},
		Reporter: rep,
	}
	report, _ := Run(spec, rng.New(1))
	assert.Equal(t, FailError, report.Result.Outcome)
	assert.Zero(t, report.TestsRun)
	assert.Len(t, rep.progress, 1)
	assert.Len(t, rep.failures, 1)
}

func TestRunZeroTotalPassesVacuously(t *testing.T) {
	rep := &recordingReporter{}
	report, _ := Run(Spec{Total: 0, Reporter: rep}, rng.New(0))
	assert.Equal(t, Pass, report.Result.Outcome)
	assert.Zero(t, report.TestsRun)
	assert.Equal(t, 1, rep.successes)
}

func TestRunNilReporter(t *testing.T) {
	report, _ := Run(Spec{
		Total: 3,
		Step: func(size int, st rng.State) (Result, rng.State) {
			return Result{Outcome: Pass}, st
		},
	}, rng.New(0))
	assert.Equal(t, 3, report.TestsRun)
}

func TestRunAdvancesStateBetweenSteps(t *testing.T) {
	var sizes []int
	var states []rng.State
	spec := Spec{
		Total: 4,
		Step: func(size int, st rng.State) (Result, rng.State) {
			sizes = append(sizes, size)
			states = append(states, st)
			_, next := st.Bool()
			return Result{Outcome: Pass}, next
		},
	}
	Run(spec, rng.New(42))
	assert.Equal(t, []int{25, 50, 75, 100}, sizes)
	for i := 1; i < len(states); i++ {
		assert.NotEqual(t, states[i-1], states[i], "state must advance between tests")
	}
}

func TestRandomizedPropertyRun(t *testing.T) {
	// End-to-end: a holding property over generated arguments.
	typ := value.FuncType(value.IntegerType(), value.FuncType(value.IntegerType(), value.BitType()))
	commutes := value.FuncOf(func(x value.Value) (value.Value, error) {
		return value.FuncOf(func(y value.Value) (value.Value, error) {
			a := new(big.Int).Add(x.Int, y.Int)
			b := new(big.Int).Add(y.Int, x.Int)
			return ev.Bit(a.Cmp(b) == 0), nil
		}), nil
	})

	gens, ok := ForProperty(typ, ev)
	require.True(t, ok)
	rep := &recordingReporter{}
	report, _ := Run(Spec{
		Property: "addition commutes",
		Total:    50,
		Step:     RandomStep(ev, commutes, gens),
		Reporter: rep,
	}, rng.New(10101))

	assert.Equal(t, Pass, report.Result.Outcome)
	assert.Equal(t, 50, report.TestsRun)
	assert.Equal(t, 1, rep.successes)
}

func TestRandomizedRunFindsCounterexample(t *testing.T) {
	typ := value.FuncType(value.IntegerType(), value.BitType())
	nonneg := value.FuncOf(func(x value.Value) (value.Value, error) {
		return ev.Bit(x.Int.Sign() >= 0), nil
	})
	gens, ok := ForProperty(typ, ev)
	require.True(t, ok)

	report, _ := Run(Spec{
		Total: 200,
		Step:  RandomStep(ev, nonneg, gens),
	}, rng.New(7))

	require.Equal(t, FailFalse, report.Result.Outcome)
	require.Len(t, report.Result.Args, 1)
	assert.Negative(t, report.Result.Args[0].Int.Sign(),
		"the counterexample must actually falsify the property")
}

func TestForPropertyRejectsUntestableTypes(t *testing.T) {
	// Non-Bit codomain.
	_, ok := ForProperty(value.FuncType(value.BitType(), value.IntegerType()), ev)
	assert.False(t, ok)
	// Ungeneratable argument.
	_, ok = ForProperty(value.FuncType(value.AbstractType(), value.BitType()), ev)
	assert.False(t, ok)
}

func TestRandomStepIsDeterministic(t *testing.T) {
	typ := value.FuncType(value.IntegerType(), value.BitType())
	fn := value.FuncOf(func(x value.Value) (value.Value, error) {
		return ev.Bit(x.Int.Sign() >= 0), nil
	})
	gens, _ := ForProperty(typ, ev)
	step := RandomStep(ev, fn, gens)

	r1, n1 := step(50, rng.New(5))
	r2, n2 := step(50, rng.New(5))
	assert.Equal(t, r1.Outcome, r2.Outcome)
	assert.Equal(t, n1, n2)
}

func TestExhaustiveRun(t *testing.T) {
	// Bit -> Bit -> Bit: 4 combinations, tested exhaustively.
	typ := value.FuncType(value.BitType(), value.FuncType(value.BitType(), value.BitType()))
	implOrNot := value.FuncOf(func(x value.Value) (value.Value, error) {
		return value.FuncOf(func(y value.Value) (value.Value, error) {
			return ev.Bit(!x.Bool || y.Bool || !y.Bool), nil
		}), nil
	})

	total, combos, ok := generator.TestableArgs(typ, ev)
	require.True(t, ok)
	require.Equal(t, int64(4), total.Int64())

	rep := &recordingReporter{}
	report, _ := Run(Spec{
		Property: "tautology",
		Total:    len(combos),
		Possible: total,
		Step:     ExhaustiveStep(ev, implOrNot, combos),
		Reporter: rep,
	}, rng.New(0))

	assert.Equal(t, Pass, report.Result.Outcome)
	assert.Equal(t, 4, report.TestsRun)
	require.NotNil(t, report.TestsPossible)
	assert.Equal(t, int64(4), report.TestsPossible.Int64())
}

func TestExhaustiveRunFindsTheOneCounterexample(t *testing.T) {
	// x && y: falsified by the very first combination (False, False).
	typ := value.FuncType(value.BitType(), value.FuncType(value.BitType(), value.BitType()))
	and := value.FuncOf(func(x value.Value) (value.Value, error) {
		return value.FuncOf(func(y value.Value) (value.Value, error) {
			return ev.Bit(x.Bool && y.Bool), nil
		}), nil
	})
	_, combos, ok := generator.TestableArgs(typ, ev)
	require.True(t, ok)

	report, _ := Run(Spec{
		Total: len(combos),
		Step:  ExhaustiveStep(ev, and, combos),
	}, rng.New(0))

	require.Equal(t, FailFalse, report.Result.Outcome)
	assert.Zero(t, report.TestsRun)
	require.Len(t, report.Result.Args, 2)
	assert.False(t, report.Result.Args[0].Bool)
	assert.False(t, report.Result.Args[1].Bool)
}
