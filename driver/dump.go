package driver

import (
	"github.com/typelab/randcheck/generator"
	"github.com/typelab/randcheck/rng"
	"github.com/typelab/randcheck/value"
)

// TracePair records one dump-mode test: the generated arguments and
// either the raw result of applying the property or the fault the
// application raised.
type TracePair struct {
	Args   []value.Value
	Result value.Value
	Err    error
}

// Dump runs total tests recording an (arguments, result) pair per
// index, with no pass/fail judgment and no short-circuiting. Argument
// generation and state threading are identical to the randomized run,
// so a dump reproduces exactly the inputs a property run would see.
func Dump(ev value.Evaluator, fn value.Value, gens []generator.Gen, total int, st rng.State) ([]TracePair, rng.State) {
	pairs := make([]TracePair, 0, total)
	for i := 0; i < total; i++ {
		args, next := genArgs(gens, SizeAt(i, total), st)
		st = next
		res, err := applyAll(ev, fn, args)
		pairs = append(pairs, TracePair{Args: args, Result: res, Err: err})
	}
	return pairs, st
}

func applyAll(ev value.Evaluator, fn value.Value, args []value.Value) (value.Value, error) {
	cur := fn
	for _, arg := range args {
		res, err := ev.Apply(cur, arg)
		if err != nil {
			return value.Value{}, err
		}
		cur = res
	}
	return cur, nil
}
