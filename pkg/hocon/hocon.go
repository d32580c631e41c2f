// Package hocon renders value trees as indented, HOCON-flavored text, the
// marker configuration format consumed by BlueMap.
//
// Values form a closed set of variants: ordered mappings ([Map]), sequences
// ([List]), and the primitives [String], [Bool], [Int], and [Float]. Because
// the [Value] interface has an unexported method, no type outside this
// package can satisfy it, so the encoder handles every possible input by
// construction.
//
// # Output format
//
// Mappings render one "key: value" pair per line, indented with tabs. The
// root mapping renders its children without an enclosing brace pair, matching
// BlueMap's root-level convention. Sequences of coordinate records (mappings
// with an "x" key) use a compact one-line-per-element form:
//
//	line: [
//		{ x: 0, y: 80, z: 0 }
//		{ x: 10, y: 80, z: 0 }
//	]
//
// All other sequences render as a single-line flat list.
package hocon

// Value is a node in the tree handed to [Encode]. The set of implementations
// is closed: Map, List, String, Bool, Int, and Float.
type Value interface {
	isValue()
}

// String is a text value, rendered double-quoted with escaping.
type String string

// Bool renders as the literal word "true" or "false".
type Bool bool

// Int is an integer value, rendered in decimal.
type Int int64

// Float is a floating-point value, rendered in decimal without an exponent.
type Float float64

// List is an ordered sequence of values.
type List []Value

func (String) isValue() {}
func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (List) isValue()   {}
func (*Map) isValue()   {}

// Map is a mapping from string keys to values that preserves insertion
// order. Key order is visible in the encoded output, so callers can rely on
// Set calls appearing in sequence.
//
// The zero Map is not usable; create instances with [NewMap].
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty ordered mapping.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// Set stores v under key and returns the map for chaining. Setting an
// existing key replaces its value but keeps its original position.
func (m *Map) Set(key string, v Value) *Map {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
	return m
}

// Get returns the value stored under key and whether it exists.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys in the map.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is shared
// with the map and must not be modified.
func (m *Map) Keys() []string {
	return m.keys
}
