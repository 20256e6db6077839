package structmatch

import (
	"strconv"

	"github.com/signadot/structmatch/debug"
	"github.com/signadot/structmatch/ir"
)

// Contains reports whether needle is structurally present within
// haystack: every described entry of needle exists in haystack,
// possibly among extra unmatched siblings, with numeric/string
// coercion at scalar leaves. Both sides must be containers.
func Contains(needle, haystack *ir.Node) bool {
	got := Intersect(needle, haystack)
	if got == nil {
		return false
	}
	res := ir.LooseEqual(got, needle)
	if debug.Contains() {
		debug.Logf("contains %s in %s -> %t\n", needle.Export(), haystack.Export(), res)
	}
	return res
}

// Intersect returns the fragment of haystack matched by needle, nil
// when either side is not a container. The fragment equals needle
// exactly when containment holds; a partial fragment means some
// described entry found no match. The fragment is a fresh tree; both
// inputs are left untouched.
func Intersect(needle, haystack *ir.Node) *ir.Node {
	return intersect(needle, haystack)
}

func intersect(a, b *ir.Node) *ir.Node {
	if a == nil || b == nil || a.Type.IsLeaf() || b.Type.IsLeaf() {
		return nil
	}
	if a.Type == ir.ArrayType && b.Type == ir.ArrayType {
		return sequentialIntersect(a, b)
	}
	return associativeIntersect(a, b)
}

// sequentialIntersect matches needle elements against haystack
// elements greedily, first fit in iteration order, no backtracking;
// each haystack element may satisfy at most one needle element. An
// unmatched needle element yields a shorter fragment, which fails the
// equality check upstream.
func sequentialIntersect(a, b *ir.Node) *ir.Node {
	claimed := make([]bool, len(b.Values))
	var out []*ir.Node
	for _, av := range a.Values {
		for j := range b.Values {
			if claimed[j] {
				continue
			}
			bv := b.Values[j]
			if !av.Type.IsLeaf() && !bv.Type.IsLeaf() {
				if got := intersect(av, bv); got != nil && ir.LooseEqual(got, av) {
					out = append(out, got)
					claimed[j] = true
					break
				}
			}
			if equalValue(av, bv) {
				out = append(out, av.Clone())
				claimed[j] = true
				break
			}
		}
	}
	return ir.FromSlice(out)
}

// associativeIntersect keeps every common key whose values match. When
// the two sides share no keys at all, the whole needle is searched for
// recursively in every haystack value. Keeping fewer entries than the
// smaller side has keys means partial accidental overlap, not
// containment.
func associativeIntersect(a, b *ir.Node) *ir.Node {
	var (
		fields []string
		values []*ir.Node
	)
	common := 0
	for _, k := range containerKeys(a) {
		bv, ok := containerGet(b, k)
		if !ok {
			continue
		}
		common++
		av, _ := containerGet(a, k)
		if !av.Type.IsLeaf() && !bv.Type.IsLeaf() {
			if got := intersect(av, bv); got != nil {
				fields = append(fields, k)
				values = append(values, got)
				continue
			}
		}
		if equalValue(av, bv) {
			fields = append(fields, k)
			values = append(values, av.Clone())
		}
	}
	if common == 0 {
		for _, bv := range containerValues(b) {
			got := intersect(a, bv)
			if got != nil && ir.Truth(got) && ir.LooseEqual(got, a) {
				return got
			}
		}
	}
	if len(fields) < min(a.Len(), b.Len()) {
		return nil
	}
	return ir.FromFields(fields, values)
}

// equalValue is scalar-leaf equality with numeric/string coercion.
// Containers reaching here compare strictly; a container never equals
// a scalar.
func equalValue(a, b *ir.Node) bool {
	if !a.Type.IsLeaf() && !b.Type.IsLeaf() {
		return ir.Equal(a, b)
	}
	if !a.Type.IsLeaf() || !b.Type.IsLeaf() {
		return false
	}
	return ir.LooseEqual(a, b)
}

// containerKeys treats array indexes as keys so that an object with
// numeric keys and an array can intersect.
func containerKeys(y *ir.Node) []string {
	switch y.Type {
	case ir.ObjectType:
		res := make([]string, len(y.Fields))
		for i, f := range y.Fields {
			res[i] = f.String
		}
		return res
	case ir.ArrayType:
		res := make([]string, len(y.Values))
		for i := range y.Values {
			res[i] = strconv.Itoa(i)
		}
		return res
	default:
		return nil
	}
}

func containerGet(y *ir.Node, k string) (*ir.Node, bool) {
	switch y.Type {
	case ir.ObjectType:
		return y.Get(k)
	case ir.ArrayType:
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= len(y.Values) {
			return nil, false
		}
		return y.Values[i], true
	default:
		return nil, false
	}
}

func containerValues(y *ir.Node) []*ir.Node {
	return y.Values
}
