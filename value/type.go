// Package value defines the typed value universe the tester operates
// on: a closed recursive set of type descriptors, the matching value
// representation, and the evaluation collaborator that constructs
// literals, applies function values and renders values for
// diagnostics.
//
// Type descriptors are built upstream and only inspected here. The
// variant set is closed on purpose: the generator engine and the
// enumerator switch over Kind exhaustively, so adding a variant forces
// every dispatch site to take a position on it.
package value

import (
	"fmt"
	"math/big"
	"strings"
)

// Kind tags both type descriptors and values.
type Kind int

const (
	KBit Kind = iota
	KInteger
	KRational
	KIntMod
	KFloat
	KArray
	KWord
	KSeq
	KStream
	KTuple
	KRecord
	KFunc
	KAbstract
)

func (k Kind) String() string {
	switch k {
	case KBit:
		return "bit"
	case KInteger:
		return "integer"
	case KRational:
		return "rational"
	case KIntMod:
		return "intmod"
	case KFloat:
		return "float"
	case KArray:
		return "array"
	case KWord:
		return "word"
	case KSeq:
		return "sequence"
	case KStream:
		return "stream"
	case KTuple:
		return "tuple"
	case KRecord:
		return "record"
	case KFunc:
		return "function"
	case KAbstract:
		return "abstract"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is an immutable descriptor of a value's shape. Only the fields
// belonging to the Kind are populated; none are mutated after
// construction.
type Type struct {
	Kind Kind

	Modulus           *big.Int // KIntMod, always >= 1
	ExpBits, PrecBits int      // KFloat
	Width             int      // KWord, >= 0
	Length            int      // KSeq, >= 0
	Elem              *Type    // KSeq, KStream
	Elems             []*Type  // KTuple, in order
	Fields            []Field  // KRecord, in canonical order, names unique
	Arg, Res          *Type    // KFunc
}

// Field is one named component of a record type.
type Field struct {
	Name string
	Type *Type
}

func BitType() *Type      { return &Type{Kind: KBit} }
func IntegerType() *Type  { return &Type{Kind: KInteger} }
func RationalType() *Type { return &Type{Kind: KRational} }
func ArrayType() *Type    { return &Type{Kind: KArray} }
func AbstractType() *Type { return &Type{Kind: KAbstract} }

// IntModType describes the integers modulo m. The modulus must be
// positive.
func IntModType(m *big.Int) *Type {
	if m.Sign() <= 0 {
		panic(fmt.Sprintf("value: IntModType modulus %s is not positive", m))
	}
	return &Type{Kind: KIntMod, Modulus: new(big.Int).Set(m)}
}

func FloatType(expBits, precBits int) *Type {
	return &Type{Kind: KFloat, ExpBits: expBits, PrecBits: precBits}
}

func WordType(width int) *Type {
	if width < 0 {
		panic(fmt.Sprintf("value: WordType width %d is negative", width))
	}
	return &Type{Kind: KWord, Width: width}
}

func SeqType(length int, elem *Type) *Type {
	if length < 0 {
		panic(fmt.Sprintf("value: SeqType length %d is negative", length))
	}
	return &Type{Kind: KSeq, Length: length, Elem: elem}
}

func StreamType(elem *Type) *Type {
	return &Type{Kind: KStream, Elem: elem}
}

func TupleType(elems ...*Type) *Type {
	return &Type{Kind: KTuple, Elems: elems}
}

func RecordType(fields ...Field) *Type {
	seen := map[string]bool{}
	for _, f := range fields {
		if seen[f.Name] {
			panic(fmt.Sprintf("value: RecordType duplicate field %q", f.Name))
		}
		seen[f.Name] = true
	}
	return &Type{Kind: KRecord, Fields: fields}
}

// FuncType describes a single-argument function; curried chains are
// built by nesting in the result position.
func FuncType(arg, res *Type) *Type {
	return &Type{Kind: KFunc, Arg: arg, Res: res}
}

// FuncArgs flattens a curried function type a -> b -> c into its
// argument list and final result type. For non-function types the
// argument list is empty and the result is the type itself.
func (t *Type) FuncArgs() ([]*Type, *Type) {
	var args []*Type
	for t.Kind == KFunc {
		args = append(args, t.Arg)
		t = t.Res
	}
	return args, t
}

func (t *Type) String() string {
	switch t.Kind {
	case KBit:
		return "Bit"
	case KInteger:
		return "Integer"
	case KRational:
		return "Rational"
	case KIntMod:
		return fmt.Sprintf("Z %s", t.Modulus)
	case KFloat:
		return fmt.Sprintf("Float %d %d", t.ExpBits, t.PrecBits)
	case KArray:
		return "Array"
	case KWord:
		return fmt.Sprintf("[%d]", t.Width)
	case KSeq:
		return fmt.Sprintf("[%d]%s", t.Length, t.Elem)
	case KStream:
		return fmt.Sprintf("[inf]%s", t.Elem)
	case KTuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KRecord:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = fmt.Sprintf("%s : %s", f.Name, f.Type)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KFunc:
		arg := t.Arg.String()
		if t.Arg.Kind == KFunc {
			arg = "(" + arg + ")"
		}
		return fmt.Sprintf("%s -> %s", arg, t.Res)
	case KAbstract:
		return "Abstract"
	}
	return t.Kind.String()
}
