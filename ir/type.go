package ir

type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	FloatType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Bool",
		IntegerType: "Integer",
		FloatType:   "Float",
		StringType:  "String",
		ArrayType:   "Array",
		ObjectType:  "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// TypeName returns the lowercase name used by type expressions to
// dispatch on a value's runtime type. Objects and arrays share the
// "array" name: a leaf expression never distinguishes the two kinds
// of container.
func (t Type) TypeName() string {
	switch t {
	case NullType:
		return "null"
	case BoolType:
		return "boolean"
	case IntegerType:
		return "integer"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	case ArrayType, ObjectType:
		return "array"
	}
	return "<unknown type>"
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}
