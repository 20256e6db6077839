package filter

import (
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ISO-8601 date-time with optional fractional seconds and
	// optional Z or +HH:MM/-HH:MM offset.
	dateRE = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2}[Tt ]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:[Zz]|[+-]\d{2}:?\d{2})?$`)

	regexFilterRE = regexp.MustCompile(`(?s)^regex\((.*)\)$`)
	cmpRE         = regexp.MustCompile(`^(>=|<=|>|<)([-+]?\d+(?:\.\d+)?)$`)
)

func builtin(f, value string) bool {
	if strings.HasPrefix(f, "=") {
		return value == f[1:]
	}
	switch f {
	case "url":
		return validURL(value)
	case "date":
		return dateRE.MatchString(value)
	case "email":
		return validEmail(value)
	case "empty":
		return value == ""
	}
	if m := regexFilterRE.FindStringSubmatch(f); m != nil {
		return matchDelimited(m[1], value)
	}
	if m := cmpRE.FindStringSubmatch(f); m != nil {
		return compare(m[1], value, m[2])
	}
	return false
}

func validURL(value string) bool {
	u, err := url.Parse(value)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}

func compare(op, value, bound string) bool {
	lhs, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	rhs, err := strconv.ParseFloat(bound, 64)
	if err != nil {
		return false
	}
	switch op {
	case ">=":
		return lhs >= rhs
	case "<=":
		return lhs <= rhs
	case ">":
		return lhs > rhs
	case "<":
		return lhs < rhs
	}
	return false
}

// matchDelimited matches value against a delimited pattern, the
// argument of a regex(...) filter. The delimiter is the first
// character; '(', '{', '[' and '<' pair with their closing
// counterparts, anything else pairs with itself. Trailing flags
// (i, m, s, U) after the closing delimiter are honored.
func matchDelimited(arg, value string) bool {
	if len(arg) < 2 {
		return false
	}
	open := arg[0]
	if isAlnum(open) {
		return false
	}
	end := strings.LastIndexByte(arg, closingDelim(open))
	if end <= 0 {
		return false
	}
	body := arg[1:end]
	if flags := goFlags(arg[end+1:]); flags != "" {
		body = "(?" + flags + ")" + body
	}
	re, err := regexp.Compile(body)
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

func compilePattern(body, flags string) (*regexp.Regexp, error) {
	if f := goFlags(flags); f != "" {
		body = "(?" + f + ")" + body
	}
	return regexp.Compile(body)
}

func goFlags(flags string) string {
	var out []byte
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case 'i', 'm', 's', 'U':
			out = append(out, flags[i])
		}
	}
	return string(out)
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
