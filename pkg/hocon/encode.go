package hocon

import (
	"strconv"
	"strings"
	"unicode"
)

// indent is the indentation unit, one tab per nesting level.
const indent = "\t"

// escaper rewrites the characters that must not appear raw inside a quoted
// string. Backslash is listed first; strings.Replacer substitutes in a single
// pass, so escapes introduced for one character are never re-escaped.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Encode renders v as HOCON-flavored text at the root nesting level. A root
// mapping renders its children directly, without enclosing braces.
func Encode(v Value) string {
	return encode(v, 0)
}

func encode(v Value, level int) string {
	switch val := v.(type) {
	case *Map:
		return encodeMap(val, level)
	case List:
		return encodeList(val, level)
	case String:
		return quote(string(val))
	case Bool:
		return strconv.FormatBool(bool(val))
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		return formatFloat(float64(val))
	}
	// Unreachable: the Value set is closed.
	return ""
}

func encodeMap(m *Map, level int) string {
	ind := strings.Repeat(indent, level)
	next := strings.Repeat(indent, level+1)

	var lines []string
	if level > 0 {
		lines = append(lines, "{")
	}
	for _, k := range m.keys {
		lines = append(lines, next+encodeKey(k)+": "+encode(m.values[k], level+1))
	}
	if level > 0 {
		lines = append(lines, ind+"}")
	}
	return strings.Join(lines, "\n")
}

func encodeList(l List, level int) string {
	if isPointList(l) {
		ind := strings.Repeat(indent, level)
		next := strings.Repeat(indent, level+1)

		lines := []string{"["}
		for _, item := range l {
			lines = append(lines, next+encodeCompact(item))
		}
		lines = append(lines, ind+"]")
		return strings.Join(lines, "\n")
	}

	parts := make([]string, len(l))
	for i, item := range l {
		parts[i] = encodeFlat(item)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// isPointList reports whether l should use the compact point-list form:
// a non-empty sequence whose first element is a mapping with an "x" key.
func isPointList(l List) bool {
	if len(l) == 0 {
		return false
	}
	m, ok := l[0].(*Map)
	if !ok {
		return false
	}
	_, ok = m.Get("x")
	return ok
}

// encodeCompact renders a point-list element on a single line, keys in
// insertion order: { x: 1, y: 80, z: -23 }.
func encodeCompact(v Value) string {
	m, ok := v.(*Map)
	if !ok {
		return encodeFlat(v)
	}
	props := make([]string, len(m.keys))
	for i, k := range m.keys {
		props[i] = k + ": " + encodeFlat(m.values[k])
	}
	return "{ " + strings.Join(props, ", ") + " }"
}

// encodeFlat renders a value for single-line contexts. Nested mappings and
// sequences collapse to their compact forms.
func encodeFlat(v Value) string {
	switch val := v.(type) {
	case *Map:
		return encodeCompact(val)
	case List:
		return encodeList(val, 0)
	default:
		return encode(v, 0)
	}
}

// encodeKey emits k unquoted when it is a safe identifier, quoted otherwise.
func encodeKey(k string) string {
	if isSafeKey(k) {
		return k
	}
	return quote(k)
}

// isSafeKey reports whether k consists only of letters, digits, hyphens, and
// underscores, with at least one letter or digit.
func isSafeKey(k string) bool {
	alnum := 0
	for _, r := range k {
		switch {
		case r == '-' || r == '_':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			alnum++
		default:
			return false
		}
	}
	return alnum > 0
}

func quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}

// formatFloat renders f in plain decimal notation. The 'f' format never
// switches to an exponent, so large world coordinates stay readable.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
