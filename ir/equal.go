package ir

// Equal reports strict structural equality: identical types, identical
// scalar values, arrays elementwise, objects with identical field
// sequences.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntegerType:
		return a.Int64 == b.Int64
	case FloatType:
		return a.Float64 == b.Float64
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].String != b.Fields[i].String {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	panic("type")
}

// LooseEqual reports equality with scalar numeric/string coercion: a
// number and a string are equal when the number's literal rendering
// equals the string, and integers compare equal to floats of the same
// magnitude. Objects compare without regard to field order. The
// coercion never applies to keys or to container shape.
func LooseEqual(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type == b.Type {
		switch a.Type {
		case NullType:
			return true
		case BoolType:
			return a.Bool == b.Bool
		case IntegerType:
			return a.Int64 == b.Int64
		case FloatType:
			return a.Float64 == b.Float64
		case StringType:
			return a.String == b.String
		case ArrayType:
			if len(a.Values) != len(b.Values) {
				return false
			}
			for i := range a.Values {
				if !LooseEqual(a.Values[i], b.Values[i]) {
					return false
				}
			}
			return true
		case ObjectType:
			if len(a.Fields) != len(b.Fields) {
				return false
			}
			bm := ToMap(b)
			for i, f := range a.Fields {
				bv, ok := bm[f.String]
				if !ok {
					return false
				}
				if !LooseEqual(a.Values[i], bv) {
					return false
				}
			}
			return true
		}
		panic("type")
	}
	switch {
	case a.Type == IntegerType && b.Type == FloatType:
		return float64(a.Int64) == b.Float64
	case a.Type == FloatType && b.Type == IntegerType:
		return a.Float64 == float64(b.Int64)
	case isNumber(a) && b.Type == StringType:
		return a.Literal() == b.String
	case a.Type == StringType && isNumber(b):
		return a.String == b.Literal()
	}
	return false
}

func isNumber(y *Node) bool {
	return y.Type == IntegerType || y.Type == FloatType
}
