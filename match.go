// Package structmatch matches JSON-like trees against declarative
// contracts: per-field type expressions (Matches) and structural
// containment (Contains).
package structmatch

import (
	"fmt"
	"sync"

	"github.com/signadot/structmatch/debug"
	"github.com/signadot/structmatch/filter"
	"github.com/signadot/structmatch/ir"
	"github.com/signadot/structmatch/typeexpr"
)

// Matcher evaluates type-expression schemas against data trees. The
// custom filter registry is owned by the caller and injected at
// construction; parsed expressions are cached per Matcher.
type Matcher struct {
	filters *filter.Registry

	mu    sync.RWMutex
	exprs map[string]*typeexpr.Expr
}

type Option func(*Matcher)

func WithFilters(r *filter.Registry) Option {
	return func(m *Matcher) { m.filters = r }
}

func New(opts ...Option) *Matcher {
	m := &Matcher{
		filters: filter.NewRegistry(),
		exprs:   map[string]*typeexpr.Expr{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Filters returns the matcher's custom filter registry.
func (m *Matcher) Filters() *filter.Registry {
	return m.filters
}

// Matches walks data and schema in lockstep. schema must be an object
// whose values are type-expression strings or nested objects; anything
// else is a contract violation and panics. When data is a collection
// (an array whose first element is an object) the schema is applied to
// every element and all failures are aggregated; otherwise the first
// failure is returned. A nil return means every described field exists
// and satisfies its expression.
func (m *Matcher) Matches(data, schema *ir.Node) error {
	if schema == nil || schema.Type != ir.ObjectType {
		panic("structmatch: schema must be an object")
	}
	if data == nil {
		panic("structmatch: nil data")
	}
	if isCollection(data) {
		var ms Mismatches
		for _, el := range data.Values {
			if mm := m.compare(el, schema); mm != nil {
				ms = append(ms, mm)
			}
		}
		if len(ms) > 0 {
			return ms
		}
		return nil
	}
	if mm := m.compare(data, schema); mm != nil {
		return mm
	}
	return nil
}

// isCollection reports whether data is a list of records: index 0
// exists and holds a mapping.
func isCollection(data *ir.Node) bool {
	return data.Type == ir.ArrayType &&
		len(data.Values) > 0 &&
		data.Values[0].Type == ir.ObjectType
}

func (m *Matcher) compare(data, schema *ir.Node) *Mismatch {
	for i, f := range schema.Fields {
		key := f.String
		want := schema.Values[i]
		val, ok := data.Get(key)
		if !ok {
			return &Mismatch{Key: key, Data: data}
		}
		switch want.Type {
		case ir.ObjectType:
			if mm := m.compare(val, want); mm != nil {
				return mm
			}
		case ir.StringType:
			if !m.matchExpr(val, want.String) {
				return &Mismatch{Key: key, Have: val, Want: want.String}
			}
		default:
			panic(fmt.Sprintf(
				"structmatch: schema leaf %q is %s, want String or Object",
				key, want.Type))
		}
	}
	return nil
}

// matchExpr evaluates one type expression against a value. The first
// alternative whose type name matches the value's runtime type decides
// the result: its filters are ANDed and later alternatives are never
// tried, even when the filters fail.
func (m *Matcher) matchExpr(v *ir.Node, src string) bool {
	ex := m.expr(src)
	name := v.Type.TypeName()
	if debug.Match() {
		debug.Logf("match %s (%s) at %s against %q\n", v.Export(), name, v.Path(), src)
	}
	for _, alt := range ex.Alternatives {
		if alt.TypeName != name {
			continue
		}
		value := v.Literal()
		for _, f := range alt.Filters {
			if !m.filters.Apply(f, value) {
				return false
			}
		}
		return true
	}
	return false
}

func (m *Matcher) expr(src string) *typeexpr.Expr {
	m.mu.RLock()
	e := m.exprs[src]
	m.mu.RUnlock()
	if e != nil {
		return e
	}
	e = typeexpr.Parse(src)
	m.mu.Lock()
	m.exprs[src] = e
	m.mu.Unlock()
	return e
}
