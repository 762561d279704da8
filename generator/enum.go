package generator

import (
	"math/big"

	"github.com/typelab/randcheck/value"
)

// Cardinality returns the number of inhabitants of t. The second
// result is false when the type is unbounded or its size is unknown
// (integers, rationals, floats, streams, arrays, functions, abstract
// types).
func Cardinality(t *value.Type) (*big.Int, bool) {
	switch t.Kind {
	case value.KBit:
		return big.NewInt(2), true
	case value.KIntMod:
		return new(big.Int).Set(t.Modulus), true
	case value.KWord:
		return new(big.Int).Lsh(bigOne, uint(t.Width)), true
	case value.KSeq:
		c, ok := Cardinality(t.Elem)
		if !ok {
			return nil, false
		}
		return new(big.Int).Exp(c, big.NewInt(int64(t.Length)), nil), true
	case value.KTuple:
		total := big.NewInt(1)
		for _, e := range t.Elems {
			c, ok := Cardinality(e)
			if !ok {
				return nil, false
			}
			total.Mul(total, c)
		}
		return total, true
	case value.KRecord:
		total := big.NewInt(1)
		for _, f := range t.Fields {
			c, ok := Cardinality(f.Type)
			if !ok {
				return nil, false
			}
			total.Mul(total, c)
		}
		return total, true
	}
	return nil, false
}

// Enumerate produces every inhabitant of t exactly once, or false when
// t has no known cardinality. Words enumerate in ascending numeric
// order; cross products (sequences, tuples, records) enumerate with
// the leftmost component varying slowest. Callers are expected to
// check Cardinality first: enumerating a large finite type builds the
// whole list.
func Enumerate(t *value.Type, ev value.Evaluator) ([]value.Value, bool) {
	switch t.Kind {
	case value.KBit:
		return []value.Value{ev.Bit(false), ev.Bit(true)}, true
	case value.KIntMod:
		var vals []value.Value
		for i := big.NewInt(0); i.Cmp(t.Modulus) < 0; i.Add(i, bigOne) {
			vals = append(vals, ev.Integer(new(big.Int).Set(i)))
		}
		return vals, true
	case value.KWord:
		limit := new(big.Int).Lsh(bigOne, uint(t.Width))
		var vals []value.Value
		for i := big.NewInt(0); i.Cmp(limit) < 0; i.Add(i, bigOne) {
			vals = append(vals, ev.Word(t.Width, new(big.Int).Set(i)))
		}
		return vals, true
	case value.KSeq:
		elems, ok := Enumerate(t.Elem, ev)
		if !ok {
			return nil, false
		}
		parts := make([][]value.Value, t.Length)
		for i := range parts {
			parts[i] = elems
		}
		var vals []value.Value
		for _, combo := range crossProduct(parts) {
			vals = append(vals, value.SeqOf(combo))
		}
		return vals, true
	case value.KTuple:
		parts := make([][]value.Value, len(t.Elems))
		for i, e := range t.Elems {
			vs, ok := Enumerate(e, ev)
			if !ok {
				return nil, false
			}
			parts[i] = vs
		}
		var vals []value.Value
		for _, combo := range crossProduct(parts) {
			vals = append(vals, value.TupleOf(combo))
		}
		return vals, true
	case value.KRecord:
		parts := make([][]value.Value, len(t.Fields))
		for i, f := range t.Fields {
			vs, ok := Enumerate(f.Type, ev)
			if !ok {
				return nil, false
			}
			parts[i] = vs
		}
		var vals []value.Value
		for _, combo := range crossProduct(parts) {
			fields := make([]value.FieldValue, len(combo))
			for i, v := range combo {
				fields[i] = value.FieldValue{Name: t.Fields[i].Name, Val: v}
			}
			vals = append(vals, value.RecordOf(fields))
		}
		return vals, true
	}
	return nil, false
}

// crossProduct builds every combination of the component enumerations,
// leftmost component varying slowest. An empty parts list yields one
// empty combination.
func crossProduct(parts [][]value.Value) [][]value.Value {
	combos := [][]value.Value{{}}
	for _, part := range parts {
		next := make([][]value.Value, 0, len(combos)*len(part))
		for _, c := range combos {
			for _, v := range part {
				row := make([]value.Value, len(c)+1)
				copy(row, c)
				row[len(c)] = v
				next = append(next, row)
			}
		}
		combos = next
	}
	return combos
}

// TestableArgs reports whether a property of function type t can be
// tested exhaustively: the codomain must be Bit and every argument
// type must have a known cardinality. It returns the total number of
// argument combinations and the full cross product of per-argument
// enumerations, one argument list per combination. A type that fails
// either condition is simply not exhaustively testable; there is no
// partial answer.
func TestableArgs(t *value.Type, ev value.Evaluator) (*big.Int, [][]value.Value, bool) {
	args, res := t.FuncArgs()
	if res.Kind != value.KBit {
		return nil, nil, false
	}
	return enumerateArgs(args, ev)
}

// EnumerableArgs is the relaxed variant used for non-judging dump
// runs: the codomain only needs a generator, not a Bit judgment. It is
// otherwise identical to TestableArgs.
func EnumerableArgs(t *value.Type, ev value.Evaluator) (*big.Int, [][]value.Value, bool) {
	args, res := t.FuncArgs()
	if _, ok := For(res, ev); !ok {
		return nil, nil, false
	}
	return enumerateArgs(args, ev)
}

func enumerateArgs(args []*value.Type, ev value.Evaluator) (*big.Int, [][]value.Value, bool) {
	total := big.NewInt(1)
	parts := make([][]value.Value, len(args))
	for i, at := range args {
		c, ok := Cardinality(at)
		if !ok {
			return nil, nil, false
		}
		total.Mul(total, c)
		vs, ok := Enumerate(at, ev)
		if !ok {
			return nil, nil, false
		}
		parts[i] = vs
	}
	return total, crossProduct(parts), true
}
