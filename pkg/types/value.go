// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"strconv"
)

// Value is one node of a résumé document tree. The set of implementations is
// closed: String, Number, Bool, Null, Sequence, and *Mapping.
type Value interface {
	// Clone returns a deep copy that shares no containers with the receiver.
	Clone() Value

	// Interface converts the node into plain Go values (string, int64 or
	// float64, bool, nil, []any, map[string]any) for template execution.
	Interface() any

	isValue()
}

// String is a text leaf.
type String string

// Number is a numeric leaf. YAML integers and floats both decode to Number.
type Number float64

// Bool is a boolean leaf.
type Bool bool

// Null is the absent/nil leaf.
type Null struct{}

// Sequence is an ordered list of values.
type Sequence []Value

func (String) isValue()   {}
func (Number) isValue()   {}
func (Bool) isValue()     {}
func (Null) isValue()     {}
func (Sequence) isValue() {}
func (*Mapping) isValue() {}

func (s String) Clone() Value { return s }
func (n Number) Clone() Value { return n }
func (b Bool) Clone() Value   { return b }
func (Null) Clone() Value     { return Null{} }

func (s Sequence) Clone() Value {
	if s == nil {
		return Sequence(nil)
	}
	out := make(Sequence, len(s))
	for i, v := range s {
		out[i] = v.Clone()
	}
	return out
}

func (s String) Interface() any { return string(s) }
func (b Bool) Interface() any   { return bool(b) }
func (Null) Interface() any     { return nil }

func (s Sequence) Interface() any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v.Interface()
	}
	return out
}

// maxExactInt is the largest magnitude at which every integer is exactly
// representable as a float64.
const maxExactInt = 1 << 53

// Interface returns whole numbers as int64 so that templates print them as
// written (4915112345678, not 4.915112345678e+12); others stay float64.
func (n Number) Interface() any {
	f := float64(n)
	if f == math.Trunc(f) && math.Abs(f) <= maxExactInt {
		return int64(f)
	}
	return f
}

// String renders a number the way it was most likely written: integers
// without a fractional part.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Mapping is an insertion-ordered map from string keys to values.
// The zero value is not usable; call NewMapping.
type Mapping struct {
	keys   []string
	values map[string]Value
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Set stores v under key. A new key is appended to the key order; an existing
// key keeps its position.
func (m *Mapping) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Clone returns a deep copy of the mapping.
func (m *Mapping) Clone() Value {
	return m.CloneMapping()
}

// CloneMapping is Clone with the concrete return type.
func (m *Mapping) CloneMapping() *Mapping {
	out := &Mapping{
		keys:   append([]string(nil), m.keys...),
		values: make(map[string]Value, len(m.values)),
	}
	for k, v := range m.values {
		out.values[k] = v.Clone()
	}
	return out
}

// Interface converts the mapping to map[string]any. Key order is lost;
// use Keys when order matters.
func (m *Mapping) Interface() any {
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v.Interface()
	}
	return out
}
