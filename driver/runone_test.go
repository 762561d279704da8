package driver

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typelab/randcheck/value"
)

var ev = value.NewInterp()

// constBit builds a two-argument property that always evaluates to b.
func constBit(b bool) value.Value {
	return value.FuncOf(func(value.Value) (value.Value, error) {
		return value.FuncOf(func(value.Value) (value.Value, error) {
			return ev.Bit(b), nil
		}), nil
	})
}

func twoArgs() []value.Value {
	return []value.Value{ev.Integer(big.NewInt(1)), ev.Integer(big.NewInt(2))}
}

func TestRunOnePass(t *testing.T) {
	res := RunOne(ev, constBit(true), twoArgs())
	assert.Equal(t, Pass, res.Outcome)
	assert.Nil(t, res.Err)
}

func TestRunOneFailFalseCarriesArguments(t *testing.T) {
	args := twoArgs()
	res := RunOne(ev, constBit(false), args)
	require.Equal(t, FailFalse, res.Outcome)
	require.Len(t, res.Args, 2)
	assert.Equal(t, "1", res.Args[0].Int.String())
	assert.Equal(t, "2", res.Args[1].Int.String())
}

func TestRunOneCatchesEvalFault(t *testing.T) {
	faulty := value.FuncOf(func(x value.Value) (value.Value, error) {
		if x.Int.Sign() == 0 {
			return value.Value{}, value.DivByZero("(/)")
		}
		return ev.Bit(true), nil
	})

	args := []value.Value{ev.Integer(big.NewInt(0))}
	res := RunOne(ev, faulty, args)
	require.Equal(t, FailError, res.Outcome)
	require.EqualError(t, res.Err, "(/): division by zero")
	require.Len(t, res.Args, 1)
	assert.Zero(t, res.Args[0].Int.Sign())

	res = RunOne(ev, faulty, []value.Value{ev.Integer(big.NewInt(3))})
	assert.Equal(t, Pass, res.Outcome)
}

func TestRunOneFaultInEarlierCurryStep(t *testing.T) {
	// The fault fires while applying the first of two arguments; the
	// result must still carry the full original argument list.
	fn := value.FuncOf(func(value.Value) (value.Value, error) {
		return value.Value{}, value.Errf("(@)", "index out of bounds")
	})
	// Declared arity is two; the first application already faults.
	args := twoArgs()
	res := RunOne(ev, fn, args)
	require.Equal(t, FailError, res.Outcome)
	assert.Len(t, res.Args, 2)
}

func TestRunOneTooManyArgumentsPanics(t *testing.T) {
	oneArg := value.FuncOf(func(value.Value) (value.Value, error) {
		return ev.Bit(true), nil
	})
	require.PanicsWithValue(t,
		"driver: internal consistency fault: too many arguments after applying 1 of 2 arguments: value True, arguments [1, 2]",
		func() { RunOne(ev, oneArg, twoArgs()) })
}

func TestRunOneTooFewArgumentsPanics(t *testing.T) {
	assert.Panics(t, func() {
		RunOne(ev, constBit(true), []value.Value{ev.Integer(big.NewInt(1))})
	})
}

func TestRunOneNonBitResultPanics(t *testing.T) {
	notAJudgment := value.FuncOf(func(x value.Value) (value.Value, error) {
		return x, nil
	})
	assert.Panics(t, func() {
		RunOne(ev, notAJudgment, []value.Value{ev.Integer(big.NewInt(9))})
	})
}
