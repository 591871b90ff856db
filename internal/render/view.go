// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"text/template"

	"github.com/pdiddy/resume-engine/pkg/types"
)

// Item is one key/value pair of a mapping.
type Item struct {
	Key   string
	Value any
}

// view converts a document into template data and remembers the key order
// of every mapping, keyed by the identity of the map it became. A view
// belongs to a single Render call.
type view struct {
	order map[uintptr][]string
}

func newView() *view {
	return &view{order: make(map[uintptr][]string)}
}

func (v *view) funcs() template.FuncMap {
	return template.FuncMap{
		"items":  v.items,
		"inline": v.inline,
	}
}

func (v *view) convert(val types.Value) any {
	switch val := val.(type) {
	case *types.Mapping:
		out := make(map[string]any, val.Len())
		for _, k := range val.Keys() {
			item, _ := val.Get(k)
			out[k] = v.convert(item)
		}
		v.order[reflect.ValueOf(out).Pointer()] = val.Keys()
		return out
	case types.Sequence:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = v.convert(item)
		}
		return out
	case nil:
		return nil
	default:
		return val.Interface()
	}
}

// items returns the pairs of a mapping in document order. Maps that did not
// come from the document are listed in sorted key order; anything else
// yields no items.
func (v *view) items(x any) []Item {
	m, ok := x.(map[string]any)
	if !ok {
		return nil
	}
	keys, ok := v.order[reflect.ValueOf(m).Pointer()]
	if !ok || len(keys) != len(m) {
		keys = make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}
	out := make([]Item, 0, len(keys))
	for _, k := range keys {
		out = append(out, Item{Key: k, Value: m[k]})
	}
	return out
}

// inline renders a value on one line: sequences as "a, b", mappings as
// "k: v, k2: v2" in document order.
func (v *view) inline(x any) string {
	switch x := x.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, len(x))
		for i, item := range x {
			parts[i] = v.inline(item)
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		items := v.items(x)
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = it.Key + ": " + v.inline(it.Value)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(x)
	}
}
