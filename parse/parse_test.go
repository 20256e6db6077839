package parse

import (
	"errors"
	"testing"

	"github.com/signadot/structmatch/ir"
)

func TestParseJSON(t *testing.T) {
	y, err := Parse([]byte(`{"id": 1, "rate": 1.5, "ok": true, "meta": null, "tags": ["a"]}`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.ObjectType {
		t.Fatalf("got %s want Object", y.Type)
	}
	for key, want := range map[string]ir.Type{
		"id":   ir.IntegerType,
		"rate": ir.FloatType,
		"ok":   ir.BoolType,
		"meta": ir.NullType,
		"tags": ir.ArrayType,
	} {
		v, ok := y.Get(key)
		if !ok {
			t.Errorf("missing key %s", key)
			continue
		}
		if v.Type != want {
			t.Errorf("%s: got %s want %s", key, v.Type, want)
		}
	}
}

func TestParseYAML(t *testing.T) {
	y, err := Parse([]byte("id: -3\nname: ann\n"))
	if err != nil {
		t.Fatal(err)
	}
	v, ok := y.Get("id")
	if !ok || v.Type != ir.IntegerType || v.Int64 != -3 {
		t.Errorf("id: got %v, %t", v, ok)
	}
}

// field order must be preserved: schema iteration order decides which
// failure is reported first
func TestParseOrder(t *testing.T) {
	y, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	if len(y.Fields) != len(want) {
		t.Fatalf("got %d fields want %d", len(y.Fields), len(want))
	}
	for i, f := range y.Fields {
		if f.String != want[i] {
			t.Errorf("field %d: got %q want %q", i, f.String, want[i])
		}
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse([]byte(`{"a": [`))
	if err == nil {
		t.Fatal("got nil error")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func TestParseScalarDoc(t *testing.T) {
	y, err := Parse([]byte(`"hello"`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Type != ir.StringType || y.String != "hello" {
		t.Errorf("got %s %q", y.Type, y.String)
	}
}
