package filter

import "testing"

type applyTest struct {
	filter string
	value  string
	res    bool
}

var applyTests = []applyTest{
	{filter: "=davert", value: "davert", res: true},
	{filter: "=davert", value: "bob", res: false},
	{filter: "!=davert", value: "bob", res: true},

	{filter: "url", value: "https://example.com/", res: true},
	{filter: "url", value: "not a url", res: false},
	{filter: "!url", value: "not a url", res: true},

	{filter: "date", value: "2011-12-03T10:15:30", res: true},
	{filter: "date", value: "2011-12-03T10:15:30Z", res: true},
	{filter: "date", value: "2011-12-03T10:15:30.123+01:00", res: true},
	{filter: "date", value: "2011-12-03T10:15:30-05:00", res: true},
	{filter: "date", value: "not-a-date", res: false},
	{filter: "!date", value: "not-a-date", res: true},

	{filter: "email", value: "jo@example.com", res: true},
	{filter: "email", value: "jo at example", res: false},

	{filter: "empty", value: "", res: true},
	{filter: "empty", value: "x", res: false},
	{filter: "!empty", value: "x", res: true},

	{filter: "regex(~^quiz$~)", value: "quiz", res: true},
	{filter: "regex(~^quiz$~)", value: "quizzes", res: false},
	{filter: "regex([xyz])", value: "xyz", res: true},
	{filter: "regex({xyz})", value: "xyz", res: true},
	{filter: "regex(<xyz>)", value: "xyz", res: true},
	{filter: "regex((xyz))", value: "xyz", res: true},
	{filter: "regex(~^abc$~i)", value: "ABC", res: true},
	{filter: "regex(~^abc$~)", value: "ABC", res: false},

	{filter: ">=5", value: "5", res: true},
	{filter: ">=5", value: "4.9", res: false},
	{filter: "<=5", value: "5", res: true},
	{filter: ">5", value: "5", res: false},
	{filter: "<12", value: "11", res: true},
	{filter: ">-2", value: "-1", res: true},
	{filter: ">+5", value: "6", res: true},
	{filter: "<+5.5", value: "5", res: true},
	{filter: ">+5", value: "4", res: false},
	{filter: "<-2.5", value: "-3", res: true},
	{filter: ">0", value: "not a number", res: false},

	// a filter matching nothing evaluates to false
	{filter: "nosuchfilter", value: "x", res: false},
	{filter: "!nosuchfilter", value: "x", res: true},
}

func TestApply(t *testing.T) {
	r := NewRegistry()
	for _, tc := range applyTests {
		if got := r.Apply(tc.filter, tc.value); got != tc.res {
			t.Errorf("Apply(%q, %q): got %t want %t", tc.filter, tc.value, got, tc.res)
		}
	}
}
