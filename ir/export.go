package ir

import (
	"strconv"
	"strings"
)

// Export renders a node as a literal for diagnostics: strings are
// single-quoted, arrays render as [...], objects as {...}.
func (y *Node) Export() string {
	b := &strings.Builder{}
	export(y, b)
	return b.String()
}

func export(y *Node, b *strings.Builder) {
	switch y.Type {
	case NullType:
		b.WriteString("null")
	case BoolType:
		b.WriteString(strconv.FormatBool(y.Bool))
	case IntegerType:
		b.WriteString(strconv.FormatInt(y.Int64, 10))
	case FloatType:
		b.WriteString(strconv.FormatFloat(y.Float64, 'g', -1, 64))
	case StringType:
		exportString(y.String, b)
	case ArrayType:
		b.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			export(v, b)
		}
		b.WriteByte(']')
	case ObjectType:
		b.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			exportString(f.String, b)
			b.WriteString(": ")
			export(y.Values[i], b)
		}
		b.WriteByte('}')
	default:
		panic("type")
	}
}

func exportString(s string, b *strings.Builder) {
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
}
