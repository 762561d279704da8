// Package generator is the type-directed generation engine: it maps a
// type descriptor to a deterministic random-value generator, and for
// small finite types it can enumerate every inhabitant instead.
//
// Generators are pure functions of (size hint, random state). The
// state discipline is the load-bearing invariant: a generator consumes
// its incoming state monotonically and splits it exactly once per
// independent substructure, so sibling draws never correlate.
package generator

import (
	"github.com/typelab/randcheck/rng"
	"github.com/typelab/randcheck/value"
)

// Gen produces one random value of a fixed type. It is deterministic:
// the same (size, state) pair always yields the same value and
// successor state. The size hint ranges over [1, 100], where 100
// requests unbounded magnitude growth for numeric leaves.
type Gen func(size int, st rng.State) (value.Value, rng.State)

// For builds a generator for t against the evaluation collaborator ev.
// The second result is false when no generator exists: function,
// array and abstract types are not generatable, and a composite type
// is not generatable when any nested type is not.
func For(t *value.Type, ev value.Evaluator) (Gen, bool) {
	switch t.Kind {
	case value.KBit:
		return genBit(ev), true
	case value.KInteger:
		return genInteger(ev), true
	case value.KRational:
		return genRational(ev), true
	case value.KIntMod:
		return genIntMod(ev, t), true
	case value.KFloat:
		return genFloat(ev, t), true
	case value.KWord:
		return genWord(ev, t), true
	case value.KSeq:
		elem, ok := For(t.Elem, ev)
		if !ok {
			return nil, false
		}
		return genSeq(t.Length, elem), true
	case value.KStream:
		elem, ok := For(t.Elem, ev)
		if !ok {
			return nil, false
		}
		return genStream(elem), true
	case value.KTuple:
		gens := make([]Gen, len(t.Elems))
		for i, et := range t.Elems {
			g, ok := For(et, ev)
			if !ok {
				return nil, false
			}
			gens[i] = g
		}
		return genTuple(gens), true
	case value.KRecord:
		names := make([]string, len(t.Fields))
		gens := make([]Gen, len(t.Fields))
		for i, f := range t.Fields {
			g, ok := For(f.Type, ev)
			if !ok {
				return nil, false
			}
			names[i] = f.Name
			gens[i] = g
		}
		return genRecord(names, gens), true
	case value.KFunc, value.KArray, value.KAbstract:
		return nil, false
	}
	return nil, false
}
