package generator

import (
	"math/big"

	"github.com/typelab/randcheck/rng"
	"github.com/typelab/randcheck/value"
)

// MaxSizeHint is the hint ceiling: below it the magnitude exponent is
// the hint itself, at or above it the exponent grows geometrically
// without bound.
const MaxSizeHint = 100

// growRange is the die rolled by the unbounded-growth loop; growStop
// ends the loop. These constants are fixed for compatibility with
// existing property-test corpora.
const (
	growRange = 8
	growStop  = 1
)

var (
	bigOne = big.NewInt(1)
	big256 = big.NewInt(256)
)

// scaledExponent maps the size hint to the magnitude exponent n shared
// by the numeric generators. For size >= MaxSizeHint, n starts at the
// ceiling and gains one per draw in [1, growRange] until the first
// growStop comes up.
func scaledExponent(size int, st rng.State) (int, rng.State) {
	if size < MaxSizeHint {
		return size, st
	}
	n := MaxSizeHint
	for {
		d, next := st.Intn(growStop, growRange)
		st = next
		if d == growStop {
			return n, st
		}
		n++
	}
}

// magnitudeBound returns 256^n.
func magnitudeBound(n int) *big.Int {
	return new(big.Int).Exp(big256, big.NewInt(int64(n)), nil)
}

func genBit(ev value.Evaluator) Gen {
	return func(_ int, st rng.State) (value.Value, rng.State) {
		b, next := st.Bool()
		return ev.Bit(b), next
	}
}

// genInteger draws uniformly in [-256^n, 256^n] for the scaled
// exponent n.
func genInteger(ev value.Evaluator) Gen {
	return func(size int, st rng.State) (value.Value, rng.State) {
		n, st := scaledExponent(size, st)
		bound := magnitudeBound(n)
		v, next := st.IntRange(new(big.Int).Neg(bound), bound)
		return ev.Integer(v), next
	}
}

// genRational draws the numerator like an integer and the denominator
// uniformly in [1, 256^n], with one shared exponent n. The denominator
// is never zero.
func genRational(ev value.Evaluator) Gen {
	return func(size int, st rng.State) (value.Value, rng.State) {
		n, st := scaledExponent(size, st)
		bound := magnitudeBound(n)
		num, st := st.IntRange(new(big.Int).Neg(bound), bound)
		den, next := st.IntRange(bigOne, bound)
		return ev.Rational(num, den), next
	}
}

// genFloat draws a rational via the integer scaling rule and lets the
// collaborator round it to a float of the declared widths. Finite
// operands with a nonzero denominator never round to NaN.
func genFloat(ev value.Evaluator, t *value.Type) Gen {
	return func(size int, st rng.State) (value.Value, rng.State) {
		n, st := scaledExponent(size, st)
		bound := magnitudeBound(n)
		num, st := st.IntRange(new(big.Int).Neg(bound), bound)
		den, next := st.IntRange(bigOne, bound)
		return ev.FloatFromRational(t.ExpBits, t.PrecBits, num, den), next
	}
}

// genIntMod draws a residue uniformly in [0, m-1].
func genIntMod(ev value.Evaluator, t *value.Type) Gen {
	hi := new(big.Int).Sub(t.Modulus, bigOne)
	return func(_ int, st rng.State) (value.Value, rng.State) {
		v, next := st.IntRange(new(big.Int), hi)
		return ev.Integer(v), next
	}
}

// genWord draws a bit pattern uniformly in [0, 2^w - 1]; word draws
// ignore the size hint.
func genWord(ev value.Evaluator, t *value.Type) Gen {
	hi := new(big.Int).Sub(new(big.Int).Lsh(bigOne, uint(t.Width)), bigOne)
	return func(_ int, st rng.State) (value.Value, rng.State) {
		bits, next := st.IntRange(new(big.Int), hi)
		return ev.Word(t.Width, bits), next
	}
}
