// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingKeepsInsertionOrder(t *testing.T) {
	m := NewMapping()
	m.Set("b", String("1"))
	m.Set("a", String("2"))
	m.Set("b", String("3"))

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	assert.Equal(t, 2, m.Len())
	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, String("3"), v)
	assert.False(t, m.Has("c"))
}

func TestKeysReturnsCopy(t *testing.T) {
	m := NewMapping()
	m.Set("a", Null{})
	keys := m.Keys()
	keys[0] = "z"
	assert.Equal(t, []string{"a"}, m.Keys())
}

func TestCloneIsDeep(t *testing.T) {
	inner := NewMapping()
	inner.Set("x", Sequence{String("a"), Number(1)})
	m := NewMapping()
	m.Set("inner", inner)

	c := m.CloneMapping()
	require.Equal(t, m, c)

	ci, _ := c.Get("inner")
	ci.(*Mapping).Set("y", Bool(true))
	seq, _ := ci.(*Mapping).Get("x")
	seq.(Sequence)[0] = String("changed")

	assert.False(t, inner.Has("y"))
	orig, _ := inner.Get("x")
	assert.Equal(t, String("a"), orig.(Sequence)[0])
}

func TestInterface(t *testing.T) {
	m := NewMapping()
	m.Set("name", String("Jane"))
	m.Set("years", Number(3))
	m.Set("remote", Bool(true))
	m.Set("manager", Null{})
	m.Set("tags", Sequence{String("go")})

	assert.Equal(t, map[string]any{
		"name":    "Jane",
		"years":   int64(3),
		"remote":  true,
		"manager": nil,
		"tags":    []any{"go"},
	}, m.Interface())
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "2020", Number(2020).String())
	assert.Equal(t, "3.9", Number(3.9).String())
}

func TestNumberInterface(t *testing.T) {
	tests := []struct {
		name string
		in   Number
		want any
	}{
		{"small int", Number(3), int64(3)},
		{"phone number", Number(4915112345678), int64(4915112345678)},
		{"million", Number(1000000), int64(1000000)},
		{"negative", Number(-42), int64(-42)},
		{"fraction", Number(3.9), 3.9},
		{"beyond exact range", Number(1e20), 1e20},
		{"infinity", Number(math.Inf(1)), math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Interface())
		})
	}
}
