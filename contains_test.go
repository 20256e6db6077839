package structmatch

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/structmatch/ir"
)

type containsTest struct {
	needle   string
	haystack string
	res      bool
}

var containsTests = []containsTest{
	{
		needle:   `{"a": {"url": "http://x"}}`,
		haystack: `{"a": {"url": "http://x", "other": 1}, "b": 2}`,
		res:      true,
	},
	{
		needle:   `{"a": {"url": "http://x"}}`,
		haystack: `{"a": {"url": "http://y", "other": 1}, "b": 2}`,
		res:      false,
	},
	// numeric/string coercion at scalar leaves, both directions
	{
		needle:   `{"a": 1}`,
		haystack: `{"a": "1"}`,
		res:      true,
	},
	{
		needle:   `{"a": "1"}`,
		haystack: `{"a": 1}`,
		res:      true,
	},
	{
		needle:   `{"a": 1}`,
		haystack: `{"a": 2}`,
		res:      false,
	},
	// coercion never applies to keys or shape
	{
		needle:   `{"a": [1]}`,
		haystack: `{"a": "1"}`,
		res:      false,
	},
	// sequential containment: shorter partial found anywhere
	{
		needle:   `[2, 4]`,
		haystack: `[1, 2, 3, 4]`,
		res:      true,
	},
	{
		needle:   `[2, 5]`,
		haystack: `[1, 2, 3, 4]`,
		res:      false,
	},
	// each haystack element satisfies at most one needle element
	{
		needle:   `[2, 2]`,
		haystack: `[1, 2]`,
		res:      false,
	},
	{
		needle:   `[2, 2]`,
		haystack: `[2, 1, 2]`,
		res:      true,
	},
	// greedy first fit, no backtracking: the first needle element
	// claims the first haystack element it fits, even when that
	// starves a later needle element
	{
		needle:   `[[1], [1, 2]]`,
		haystack: `[[1, 2, 3], [1]]`,
		res:      false,
	},
	{
		needle:   `[[1, 2], [1]]`,
		haystack: `[[1, 2, 3], [1]]`,
		res:      true,
	},
	// no shared keys: the whole needle is searched for in every
	// haystack value
	{
		needle:   `{"x": 1}`,
		haystack: `{"wrap": {"x": 1, "y": 2}}`,
		res:      true,
	},
	{
		needle:   `{"x": 1}`,
		haystack: `{"wrap": {"outer": {"x": 1}}}`,
		res:      true,
	},
	{
		needle:   `{"x": 1}`,
		haystack: `{"wrap": {"x": 2}}`,
		res:      false,
	},
	// partial accidental overlap is not containment
	{
		needle:   `{"a": 1, "b": 2}`,
		haystack: `{"a": 1, "c": 3}`,
		res:      false,
	},
	{
		needle:   `{"a": 1, "b": 2}`,
		haystack: `{"a": 1, "b": 2, "c": 3}`,
		res:      true,
	},
	// records inside lists
	{
		needle:   `{"items": [{"id": 2}]}`,
		haystack: `{"items": [{"id": 1}, {"id": 2, "x": 9}]}`,
		res:      true,
	},
	{
		needle:   `{"items": [{"id": 7}]}`,
		haystack: `{"items": [{"id": 1}, {"id": 2}]}`,
		res:      false,
	},
	{
		needle:   `{}`,
		haystack: `{"a": 1}`,
		res:      true,
	},
}

func TestContains(t *testing.T) {
	for _, tc := range containsTests {
		needle := mustParse(t, tc.needle)
		haystack := mustParse(t, tc.haystack)
		if got := Contains(needle, haystack); got != tc.res {
			t.Errorf("Contains(%s, %s): got %t want %t", tc.needle, tc.haystack, got, tc.res)
		}
	}
}

func TestContainsLeavesNeedleIntact(t *testing.T) {
	needle := mustParse(t, `{"items": [2, 4]}`)
	items := needle.Values[0]
	leaf := items.Values[0]
	if !Contains(needle, mustParse(t, `{"items": [1, 2, 3, 4]}`)) {
		t.Fatal("expected containment")
	}
	if leaf.Parent != items {
		t.Error("leaf reparented by Contains")
	}
	if leaf.Root() != needle {
		t.Errorf("leaf root is %s, not the needle", leaf.Root().Export())
	}

	// the deep-search path builds partial fragments even when
	// containment fails; the needle must stay untouched there too
	needle = mustParse(t, `{"x": 1, "q": 9}`)
	leaf = needle.Values[0]
	if Contains(needle, mustParse(t, `{"wrap": {"x": 1}}`)) {
		t.Fatal("expected no containment")
	}
	if leaf.Parent != needle || leaf.Root() != needle {
		t.Error("leaf reparented by failed Contains")
	}
}

func TestContainsScalars(t *testing.T) {
	if Contains(ir.FromInt(1), ir.FromInt(1)) {
		t.Error("scalar roots are not containers")
	}
}

func TestIntersectFragment(t *testing.T) {
	needle := mustParse(t, `{"a": 1, "b": 2}`)
	haystack := mustParse(t, `{"b": 2, "a": 1, "c": 3}`)
	got := Intersect(needle, haystack)
	if got == nil {
		t.Fatal("got nil fragment")
	}
	if diff := cmp.Diff(ir.ToAny(needle), ir.ToAny(got)); diff != "" {
		t.Errorf("fragment differs from needle (-want +got):\n%s", diff)
	}
}
