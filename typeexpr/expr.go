// Package typeexpr parses per-field type expressions of the form
//
//	typeName:filter:filter|typeName:filter...
//
// into a typed AST. Embedded regex(...) filter bodies may contain the
// '|' and ':' separator characters, so they are masked with positional
// placeholders before splitting and restored afterwards.
package typeexpr

import (
	"fmt"
	"strings"
)

type Expr struct {
	Source       string
	Alternatives []Alternative
}

// Alternative is one typeName:filter:filter... segment of a
// '|'-separated expression. TypeName is lowercased, trimmed and
// normalized ("double" becomes "float"). Filters hold the raw filter
// text with regex bodies restored.
type Alternative struct {
	TypeName string
	Filters  []string
}

// Parse splits an expression into alternatives and filters. It never
// fails: the grammar is split-driven and unrecognized filter text is
// simply carried through for the evaluator to reject.
func Parse(src string) *Expr {
	masked, bodies := maskRegexes(src)
	parts := strings.Split(masked, "|")
	res := &Expr{
		Source:       src,
		Alternatives: make([]Alternative, 0, len(parts)),
	}
	for _, part := range parts {
		fields := strings.Split(part, ":")
		alt := Alternative{
			TypeName: normalizeTypeName(fields[0]),
		}
		for _, f := range fields[1:] {
			alt.Filters = append(alt.Filters, restore(f, bodies))
		}
		res.Alternatives = append(res.Alternatives, alt)
	}
	return res
}

func normalizeTypeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "double" {
		return "float"
	}
	return s
}

func placeholder(i int) string {
	return fmt.Sprintf("\x00%d\x00", i)
}

func restore(s string, bodies []string) string {
	for i, b := range bodies {
		s = strings.Replace(s, placeholder(i), b, 1)
	}
	return s
}

// maskRegexes replaces every well-formed regex(...) occurrence with a
// positional placeholder containing no separator characters, returning
// the masked string and the extracted occurrences.
func maskRegexes(s string) (string, []string) {
	var (
		out    strings.Builder
		bodies []string
	)
	i := 0
	for {
		j := strings.Index(s[i:], "regex(")
		if j < 0 {
			out.WriteString(s[i:])
			break
		}
		j += i
		end, ok := scanRegex(s, j)
		if !ok {
			out.WriteString(s[i : j+len("regex(")])
			i = j + len("regex(")
			continue
		}
		out.WriteString(s[i:j])
		bodies = append(bodies, s[j:end])
		out.WriteString(placeholder(len(bodies) - 1))
		i = end
	}
	return out.String(), bodies
}

// scanRegex scans a regex(...) occurrence starting at j, tracking the
// pattern's delimiter balance, and returns the index just past the
// closing ')'. The delimiter is the first character of the argument;
// '(', '{', '[' and '<' pair with their closing counterparts, any
// other non-alphanumeric character pairs with itself.
func scanRegex(s string, j int) (int, bool) {
	i := j + len("regex(")
	if i >= len(s) {
		return 0, false
	}
	open := s[i]
	if isAlnum(open) {
		return 0, false
	}
	close := closingDelim(open)
	depth := 1
	i++
	for ; i < len(s); i++ {
		c := s[i]
		if open != close && c == open {
			depth++
			continue
		}
		if c == close {
			depth--
			if depth == 0 {
				break
			}
		}
	}
	if depth != 0 {
		return 0, false
	}
	// optional pattern flags between the closing delimiter and ')'
	i++
	for i < len(s) && isAlnum(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != ')' {
		return 0, false
	}
	return i + 1, true
}

func closingDelim(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '{':
		return '}'
	case '[':
		return ']'
	case '<':
		return '>'
	default:
		return open
	}
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z'
}
