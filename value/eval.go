package value

import (
	"math/big"

	"github.com/pkg/errors"
)

// Evaluator is the evaluation collaborator. Literal construction
// returns a value in the collaborator's execution context; Apply
// forces one step of function application and may raise the
// interpreted program's own runtime fault, surfaced as an *EvalError;
// Render pretty-prints a value for diagnostics only.
type Evaluator interface {
	Bit(b bool) Value
	Integer(v *big.Int) Value
	Rational(num, den *big.Int) Value
	Word(width int, bits *big.Int) Value
	FloatFromRational(expBits, precBits int, num, den *big.Int) Value
	Apply(fn, arg Value) (Value, error)
	Render(v Value) string
}

// Interp is the reference Evaluator: strict and in-memory. It backs
// the command-line front end and the test suites; a production caller
// substitutes its own interpreter behind the Evaluator interface.
type Interp struct{}

// NewInterp returns the reference evaluator.
func NewInterp() *Interp { return &Interp{} }

func (*Interp) Bit(b bool) Value {
	return Value{Kind: KBit, Bool: b}
}

func (*Interp) Integer(v *big.Int) Value {
	return Value{Kind: KInteger, Int: new(big.Int).Set(v)}
}

func (*Interp) Rational(num, den *big.Int) Value {
	if den.Sign() <= 0 {
		panic("value: rational literal with non-positive denominator")
	}
	return Value{
		Kind: KRational,
		Num:  new(big.Int).Set(num),
		Den:  new(big.Int).Set(den),
	}
}

func (*Interp) Word(width int, bits *big.Int) Value {
	return Value{Kind: KWord, Width: width, Bits: new(big.Int).Set(bits)}
}

// FloatFromRational rounds num/den to the nearest binary float of the
// given precision. Both operands are finite and den >= 1, so the
// result is never NaN.
func (*Interp) FloatFromRational(expBits, precBits int, num, den *big.Int) Value {
	prec := uint(precBits)
	if prec == 0 {
		prec = 1
	}
	n := new(big.Float).SetPrec(prec).SetInt(num)
	d := new(big.Float).SetPrec(prec).SetInt(den)
	q := new(big.Float).SetPrec(prec).Quo(n, d)
	return Value{Kind: KFloat, Float: q, ExpBits: expBits, PrecBits: precBits}
}

func (ip *Interp) Apply(fn, arg Value) (Value, error) {
	if fn.Kind != KFunc || fn.Fn == nil {
		return Value{}, errors.Errorf("apply: %s is not a function", ip.Render(fn))
	}
	res, err := fn.Fn(arg)
	if err != nil {
		return Value{}, err
	}
	return res, nil
}

func (*Interp) Render(v Value) string { return Render(v) }
