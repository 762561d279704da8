package value

import (
	"fmt"
	"strings"
)

// streamPreview is how many leading elements Render shows for an
// infinite stream.
const streamPreview = 3

// Render pretty-prints a value for diagnostics. Streams are rendered
// by their first few elements only; rendering never materializes an
// infinite value.
func Render(v Value) string {
	switch v.Kind {
	case KBit:
		if v.Bool {
			return "True"
		}
		return "False"
	case KInteger:
		return v.Int.String()
	case KRational:
		return fmt.Sprintf("(ratio %s %s)", v.Num, v.Den)
	case KWord:
		digits := (v.Width + 3) / 4
		if digits == 0 {
			digits = 1
		}
		return fmt.Sprintf("0x%0*x", digits, v.Bits)
	case KFloat:
		return v.Float.Text('g', 10)
	case KSeq:
		parts := make([]string, v.Len)
		for i := 0; i < v.Len; i++ {
			parts[i] = Render(v.At(i))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KStream:
		parts := make([]string, 0, streamPreview+1)
		for i := 0; i < streamPreview; i++ {
			parts = append(parts, Render(v.At(i)))
		}
		parts = append(parts, "...")
		return "[" + strings.Join(parts, ", ") + "]"
	case KTuple:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = Render(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KRecord:
		parts := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			parts[i] = fmt.Sprintf("%s = %s", f.Name, Render(f.Val))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KFunc:
		return "<function>"
	}
	return fmt.Sprintf("<%s>", v.Kind)
}
