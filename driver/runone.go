package driver

import (
	"fmt"
	"strings"

	"github.com/typelab/randcheck/value"
)

// RunOne applies fn to args by sequential currying and classifies the
// outcome. Runtime faults raised while forcing an application are
// caught and reported as FailError with the original arguments; they
// never propagate.
//
// The argument list must match the function's declared arity exactly.
// A mismatch in either direction, or a final value that is not a bit,
// is a caller contract violation (mismatched generators vs. function
// type) and halts with a diagnostic, not a Result.
func RunOne(ev value.Evaluator, fn value.Value, args []value.Value) Result {
	cur := fn
	for i, arg := range args {
		if cur.Kind != value.KFunc {
			panic(consistencyFault(ev, "too many arguments", cur, args, i))
		}
		res, err := ev.Apply(cur, arg)
		if err != nil {
			return Result{Outcome: FailError, Err: err, Args: args}
		}
		cur = res
	}
	switch cur.Kind {
	case value.KFunc:
		panic(consistencyFault(ev, "too few arguments", cur, args, len(args)))
	case value.KBit:
		if cur.Bool {
			return Result{Outcome: Pass}
		}
		return Result{Outcome: FailFalse, Args: args}
	}
	panic(consistencyFault(ev, "property result is not a bit", cur, args, len(args)))
}

func consistencyFault(ev value.Evaluator, msg string, v value.Value, args []value.Value, applied int) string {
	rendered := make([]string, len(args))
	for i, a := range args {
		rendered[i] = ev.Render(a)
	}
	return fmt.Sprintf(
		"driver: internal consistency fault: %s after applying %d of %d arguments: value %s, arguments [%s]",
		msg, applied, len(args), ev.Render(v), strings.Join(rendered, ", "))
}
