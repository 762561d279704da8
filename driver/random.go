package driver

import (
	"github.com/typelab/randcheck/generator"
	"github.com/typelab/randcheck/rng"
	"github.com/typelab/randcheck/value"
)

// ForProperty builds the per-argument generators for a property of
// function type t. It reports false when the codomain is not Bit or
// any argument type has no generator, in which case the property
// cannot be tested randomly.
func ForProperty(t *value.Type, ev value.Evaluator) ([]generator.Gen, bool) {
	args, res := t.FuncArgs()
	if res.Kind != value.KBit {
		return nil, false
	}
	gens := make([]generator.Gen, len(args))
	for i, at := range args {
		g, ok := generator.For(at, ev)
		if !ok {
			return nil, false
		}
		gens[i] = g
	}
	return gens, true
}

// RandomStep builds the step function of a randomized property run:
// each invocation generates the full argument list and judges one
// application of fn to it.
func RandomStep(ev value.Evaluator, fn value.Value, gens []generator.Gen) StepFn {
	return func(size int, st rng.State) (Result, rng.State) {
		args, next := genArgs(gens, size, st)
		return RunOne(ev, fn, args), next
	}
}

// genArgs splits the incoming state once per argument and generates
// the argument list in declaration order. The split keeps each
// argument's draws independent of its siblings; the result order is
// always left to right regardless of how the state is consumed.
func genArgs(gens []generator.Gen, size int, st rng.State) ([]value.Value, rng.State) {
	args := make([]value.Value, len(gens))
	for i, g := range gens {
		sub, next := st.Split()
		args[i], _ = g(size, sub)
		st = next
	}
	return args, st
}

// ExhaustiveStep steps through precomputed argument lists in order,
// ignoring the size hint and leaving the random state untouched. Used
// with the enumerator for small finite domains.
func ExhaustiveStep(ev value.Evaluator, fn value.Value, combos [][]value.Value) StepFn {
	i := 0
	return func(_ int, st rng.State) (Result, rng.State) {
		args := combos[i]
		i++
		return RunOne(ev, fn, args), st
	}
}
