// Package filter evaluates the filter segment of type expressions:
// built-in predicates plus a caller-owned registry of custom ones.
package filter

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/signadot/structmatch/debug"
)

// Func is the uniform custom predicate signature. value is the string
// form of the field under test; args holds the groups captured by a
// pattern-named entry, nil for exact-named entries.
type Func func(value string, args []string) bool

type entry struct {
	name    string
	pattern *regexp.Regexp
	fn      Func
}

// Registry holds custom filters. It is owned by the caller and
// injected into a Matcher; entries persist until Clean. Lookup walks
// entries in registration order, pattern-named entries (names of the
// form /.../) matching the whole filter text, exact-named entries by
// string equality.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers fn under name. A name delimited by slashes is compiled
// as a pattern; trailing pattern flags (i, m, s, U) are honored.
func (r *Registry) Add(name string, fn Func) error {
	e := entry{name: name, fn: fn}
	if strings.HasPrefix(name, "/") {
		end := strings.LastIndexByte(name, '/')
		if end == 0 {
			return fmt.Errorf("filter: unterminated pattern name %q", name)
		}
		re, err := compilePattern(name[1:end], name[end+1:])
		if err != nil {
			return fmt.Errorf("filter: bad pattern name %q: %w", name, err)
		}
		e.pattern = re
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

// Clean removes all registered filters.
func (r *Registry) Clean() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Apply evaluates one filter against the string form of a value. A
// leading '!' negates the remainder. Custom filters are consulted
// before built-ins; a filter matching neither evaluates to false.
func (r *Registry) Apply(f, value string) bool {
	f = strings.TrimSpace(f)
	if strings.HasPrefix(f, "!") {
		return !r.Apply(f[1:], value)
	}
	if handled, res := r.custom(f, value); handled {
		if debug.Filter() {
			debug.Logf("filter %q on %q: custom -> %t\n", f, value, res)
		}
		return res
	}
	res := builtin(f, value)
	if debug.Filter() {
		debug.Logf("filter %q on %q -> %t\n", f, value, res)
	}
	return res
}

func (r *Registry) custom(f, value string) (handled, res bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		e := &r.entries[i]
		if e.pattern != nil {
			m := e.pattern.FindStringSubmatch(f)
			if m == nil {
				continue
			}
			return true, e.fn(value, m[1:])
		}
		if e.name == f {
			return true, e.fn(value, nil)
		}
	}
	return false, false
}
