package value

import "math/big"

// Value is the runtime representation mirroring the type descriptors.
// Only the fields belonging to the Kind are populated. Integers modulo
// m are represented by their residue as a KInteger.
//
// Sequence and stream values carry an element accessor rather than a
// slice of elements. The accessor is referentially consistent:
// repeated access at the same index yields the same element identity.
// Stream accessors are lazy and memoized per index; the stream is
// never materialized as a whole.
type Value struct {
	Kind Kind

	Bool     bool            // KBit
	Int      *big.Int        // KInteger (including modular residues)
	Num, Den *big.Int        // KRational, Den >= 1
	Width    int             // KWord
	Bits     *big.Int        // KWord, 0 <= Bits < 2^Width
	Float    *big.Float      // KFloat
	ExpBits  int             // KFloat
	PrecBits int             // KFloat
	Len      int             // KSeq
	At       func(int) Value // KSeq (0 <= i < Len), KStream (any i >= 0)
	Elems    []Value         // KTuple, in order
	Fields   []FieldValue    // KRecord, in canonical field order

	// Fn applies the function value to one argument. Forcing the
	// application may raise a runtime fault of the interpreted
	// program, returned as an *EvalError.
	Fn func(Value) (Value, error) // KFunc
}

// FieldValue is one named component of a record value.
type FieldValue struct {
	Name string
	Val  Value
}

// SeqOf wraps elems as a finite sequence value preserving order.
func SeqOf(elems []Value) Value {
	return Value{
		Kind: KSeq,
		Len:  len(elems),
		At:   func(i int) Value { return elems[i] },
	}
}

// StreamOf wraps a memoized element accessor as an infinite stream
// value.
func StreamOf(at func(int) Value) Value {
	return Value{Kind: KStream, At: at}
}

// TupleOf wraps elems as a tuple value preserving order.
func TupleOf(elems []Value) Value {
	return Value{Kind: KTuple, Elems: elems}
}

// RecordOf wraps fields as a record value; the slice order is the
// record's canonical field order.
func RecordOf(fields []FieldValue) Value {
	return Value{Kind: KRecord, Fields: fields}
}

// FuncOf wraps a Go closure as a function value.
func FuncOf(fn func(Value) (Value, error)) Value {
	return Value{Kind: KFunc, Fn: fn}
}
