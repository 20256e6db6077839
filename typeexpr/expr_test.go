package typeexpr

import (
	"reflect"
	"testing"
)

type parseTest struct {
	in   string
	want []Alternative
}

var parseTests = []parseTest{
	{
		in:   `integer`,
		want: []Alternative{{TypeName: "integer"}},
	},
	{
		in: `string|integer`,
		want: []Alternative{
			{TypeName: "string"},
			{TypeName: "integer"},
		},
	},
	{
		in: `integer:>5:<12`,
		want: []Alternative{
			{TypeName: "integer", Filters: []string{">5", "<12"}},
		},
	},
	{
		in: ` Double `,
		want: []Alternative{
			{TypeName: "float"},
		},
	},
	{
		in: `string:regex(~^a$~)`,
		want: []Alternative{
			{TypeName: "string", Filters: []string{"regex(~^a$~)"}},
		},
	},
	// separators inside the regex body survive splitting
	{
		in: `string:regex(~^(a|z):b$~)|integer:>0`,
		want: []Alternative{
			{TypeName: "string", Filters: []string{"regex(~^(a|z):b$~)"}},
			{TypeName: "integer", Filters: []string{">0"}},
		},
	},
	{
		in: `string:regex([a|b]):!empty`,
		want: []Alternative{
			{TypeName: "string", Filters: []string{"regex([a|b])", "!empty"}},
		},
	},
	{
		in: `string:regex({x{2}})`,
		want: []Alternative{
			{TypeName: "string", Filters: []string{"regex({x{2}})"}},
		},
	},
	{
		in: `string:regex(<a:c>)`,
		want: []Alternative{
			{TypeName: "string", Filters: []string{"regex(<a:c>)"}},
		},
	},
	{
		in: `string:regex((a(b)c))`,
		want: []Alternative{
			{TypeName: "string", Filters: []string{"regex((a(b)c))"}},
		},
	},
	{
		in: `string:regex(~abc~i)`,
		want: []Alternative{
			{TypeName: "string", Filters: []string{"regex(~abc~i)"}},
		},
	},
	{
		in: `string:=a|b`,
		want: []Alternative{
			{TypeName: "string", Filters: []string{"=a"}},
			{TypeName: "b"},
		},
	},
	// unterminated regex argument: no masking, plain splitting
	{
		in: `string:regex(~abc`,
		want: []Alternative{
			{TypeName: "string", Filters: []string{"regex(~abc"}},
		},
	},
}

func TestParse(t *testing.T) {
	for _, tc := range parseTests {
		got := Parse(tc.in)
		if got.Source != tc.in {
			t.Errorf("Parse(%q): source %q", tc.in, got.Source)
		}
		if !reflect.DeepEqual(got.Alternatives, tc.want) {
			t.Errorf("Parse(%q):\ngot  %#v\nwant %#v", tc.in, got.Alternatives, tc.want)
		}
	}
}
