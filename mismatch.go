package structmatch

import (
	"fmt"
	"strings"

	"github.com/signadot/structmatch/ir"
)

// Mismatch describes one failed field: either a key missing from the
// data mapping, or a value that did not satisfy its type expression.
// It is a returned diagnostic, never a panic; callers decide whether
// it becomes a test failure.
type Mismatch struct {
	Key  string
	Have *ir.Node // the offending value; nil when the key is missing
	Want string   // the type expression; empty when the key is missing
	Data *ir.Node // the enclosing mapping, rendered for missing keys
}

func (m *Mismatch) Error() string {
	if m.Have == nil {
		return fmt.Sprintf("key `%s` doesn't exist in `%s`", m.Key, m.Data.Export())
	}
	return fmt.Sprintf("`%s: %s` is of type `%s`", m.Key, m.Have.Export(), m.Want)
}

// Mismatches aggregates per-element failures of a collection match,
// one line each.
type Mismatches []*Mismatch

func (ms Mismatches) Error() string {
	lines := make([]string, len(ms))
	for i, m := range ms {
		lines[i] = m.Error()
	}
	return strings.Join(lines, "\n")
}
