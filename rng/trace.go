package rng

import (
	"fmt"
	"math/big"
)

// NewTrace wraps inner so that every draw made from it, or from any
// state derived from it, is appended to the returned log. Two runs
// that consume random state identically produce identical logs; two
// sibling substructures must not. Used by tests to check the
// state-consumption discipline.
func NewTrace(inner State) (State, *[]string) {
	log := []string{}
	return traceState{inner: inner, log: &log}, &log
}

type traceState struct {
	inner State
	log   *[]string
}

func (t traceState) record(format string, args ...interface{}) {
	*t.log = append(*t.log, fmt.Sprintf(format, args...))
}

func (t traceState) Split() (State, State) {
	a, b := t.inner.Split()
	t.record("split")
	return traceState{inner: a, log: t.log}, traceState{inner: b, log: t.log}
}

func (t traceState) Bool() (bool, State) {
	v, next := t.inner.Bool()
	t.record("bool=%v", v)
	return v, traceState{inner: next, log: t.log}
}

func (t traceState) IntRange(lo, hi *big.Int) (*big.Int, State) {
	v, next := t.inner.IntRange(lo, hi)
	t.record("int[%s,%s]=%s", lo, hi, v)
	return v, traceState{inner: next, log: t.log}
}

func (t traceState) Intn(lo, hi int) (int, State) {
	v, next := t.inner.Intn(lo, hi)
	t.record("intn[%d,%d]=%d", lo, hi, v)
	return v, traceState{inner: next, log: t.log}
}
