package generator

import (
	"github.com/typelab/randcheck/rng"
	"github.com/typelab/randcheck/value"
)

// genSeq splits the incoming state once, then draws the n elements
// sequentially from the child state, preserving draw order. The parent
// continuation state is returned, so the sequence's draws never leak
// into sibling structures.
func genSeq(n int, elem Gen) Gen {
	return func(size int, st rng.State) (value.Value, rng.State) {
		sub, next := st.Split()
		elems := make([]value.Value, n)
		for i := range elems {
			elems[i], sub = elem(size, sub)
		}
		return value.SeqOf(elems), next
	}
}

// genStream splits once and captures the child state in a memoized
// lazy unfold: element i is the i-th sequential draw from the captured
// state. The stream is conceptually infinite and never materialized.
func genStream(elem Gen) Gen {
	return func(size int, st rng.State) (value.Value, rng.State) {
		sub, next := st.Split()
		return value.StreamOf(streamAccessor(elem, size, sub)), next
	}
}

// streamAccessor returns a referentially consistent element accessor:
// the first access at index i advances the unfold up to i and caches
// every element produced on the way, so re-reads yield the same
// element identity.
func streamAccessor(elem Gen, size int, st rng.State) func(int) value.Value {
	var cache []value.Value
	return func(i int) value.Value {
		for len(cache) <= i {
			v, next := elem(size, st)
			cache = append(cache, v)
			st = next
		}
		return cache[i]
	}
}

// genTuple threads the state through the component generators in
// left-to-right order; no split is needed because the components draw
// from strictly disjoint segments of one sequence.
func genTuple(gens []Gen) Gen {
	return func(size int, st rng.State) (value.Value, rng.State) {
		elems := make([]value.Value, len(gens))
		for i, g := range gens {
			elems[i], st = g(size, st)
		}
		return value.TupleOf(elems), st
	}
}

// genRecord is the tuple rule applied in canonical field order, with
// the results keyed by field name.
func genRecord(names []string, gens []Gen) Gen {
	return func(size int, st rng.State) (value.Value, rng.State) {
		fields := make([]value.FieldValue, len(gens))
		for i, g := range gens {
			var v value.Value
			v, st = g(size, st)
			fields[i] = value.FieldValue{Name: names[i], Val: v}
		}
		return value.RecordOf(fields), st
	}
}
