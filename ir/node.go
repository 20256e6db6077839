package ir

import (
	"fmt"
	"sort"
	"strconv"
)

// Node is the runtime representation of a decoded structured value: a
// tagged union over null, bool, integer, float, string, array and
// object. Objects keep their fields in decode order via the parallel
// Fields/Values slices.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType, Values: vs}
	for i, v := range vs {
		v.Parent = res
		v.ParentIndex = i
	}
	return res
}

// FromFields builds an object node preserving field order.
func FromFields(fields []string, values []*Node) *Node {
	if len(fields) != len(values) {
		panic("ir: fields/values length mismatch")
	}
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, len(fields)),
		Values: values,
	}
	for i, f := range fields {
		fn := FromString(f)
		fn.Parent = res
		fn.ParentIndex = i
		res.Fields[i] = fn
		values[i].Parent = res
		values[i].ParentIndex = i
		values[i].ParentField = f
	}
	return res
}

// FromMap builds an object node with fields in sorted key order.
func FromMap(m map[string]*Node) *Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]*Node, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return FromFields(keys, values)
}

func ToMap(y *Node) map[string]*Node {
	res := make(map[string]*Node, len(y.Fields))
	for i, f := range y.Fields {
		res[f.String] = y.Values[i]
	}
	return res
}

// FromAny converts a decoded Go value (as produced by JSON/YAML
// unmarshaling into any) to a Node.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("ir: cannot convert %T", v)
	}
}

// ToAny converts a Node back to plain Go values.
func ToAny(y *Node) any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case IntegerType:
		return y.Int64
	case FloatType:
		return y.Float64
	case StringType:
		return y.String
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = ToAny(y.Values[i])
		}
		return res
	}
	panic("type")
}

// Get returns the value at field k of an object node.
func (y *Node) Get(k string) (*Node, bool) {
	if y.Type != ObjectType {
		return nil, false
	}
	for i, f := range y.Fields {
		if f.String == k {
			return y.Values[i], true
		}
	}
	return nil, false
}

func (y *Node) Len() int {
	switch y.Type {
	case ObjectType:
		return len(y.Fields)
	case ArrayType:
		return len(y.Values)
	default:
		return 0
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	return dst
}

// Literal returns the string form of a scalar node, the form filter
// predicates operate on. Containers render as their Export form.
func (y *Node) Literal() string {
	switch y.Type {
	case NullType:
		return ""
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case IntegerType:
		return strconv.FormatInt(y.Int64, 10)
	case FloatType:
		return strconv.FormatFloat(y.Float64, 'g', -1, 64)
	case StringType:
		return y.String
	default:
		return y.Export()
	}
}
