// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads résumé documents from YAML or JSON into the
// ordered value tree defined in pkg/types, and writes them back out.
package document

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-engine/pkg/types"
)

var (
	// ErrTypeMismatch reports a value that has no counterpart in types.Value.
	ErrTypeMismatch = errors.New("unsupported value type")

	// ErrNotMapping reports a document whose root is not a mapping.
	ErrNotMapping = errors.New("document root is not a mapping")
)

// Load reads and parses the document at path.
func Load(path string) (*types.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes YAML (or JSON, which is valid YAML) into a document. Mapping
// key order is preserved. An empty input yields an empty document.
func Parse(data []byte) (*types.Mapping, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if root.Kind == 0 {
		return types.NewMapping(), nil
	}
	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return types.NewMapping(), nil
		}
		node = node.Content[0]
	}
	for node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}
	v, err := fromNode(node)
	if err != nil {
		return nil, err
	}
	return v.(*types.Mapping), nil
}

func fromNode(n *yaml.Node) (types.Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		return fromScalar(n)
	case yaml.SequenceNode:
		seq := make(types.Sequence, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	case yaml.MappingNode:
		m := types.NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.ShortTag() == "!!merge" {
				if err := merge(m, v); err != nil {
					return nil, err
				}
				continue
			}
			val, err := fromNode(v)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k.Value, err)
			}
			m.Set(k.Value, val)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("line %d: node kind %d: %w", n.Line, n.Kind, ErrTypeMismatch)
	}
}

// merge applies a YAML merge key ("<<: *anchor"). Keys already present win.
func merge(dst *types.Mapping, n *yaml.Node) error {
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}
	for _, src := range sources {
		v, err := fromNode(src)
		if err != nil {
			return err
		}
		m, ok := v.(*types.Mapping)
		if !ok {
			return fmt.Errorf("line %d: merge of non-mapping: %w", src.Line, ErrTypeMismatch)
		}
		for _, k := range m.Keys() {
			if dst.Has(k) {
				continue
			}
			mv, _ := m.Get(k)
			dst.Set(k, mv)
		}
	}
	return nil
}

func fromScalar(n *yaml.Node) (types.Value, error) {
	switch n.ShortTag() {
	case "!!str", "!!timestamp":
		return types.String(n.Value), nil
	case "!!null":
		return types.Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return types.Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return types.Number(f), nil
	default:
		return nil, fmt.Errorf("line %d: tag %s: %w", n.Line, n.ShortTag(), ErrTypeMismatch)
	}
}

// FromAny converts plain Go values, as produced by encoding/json or a YAML
// decoder into interface{}, to a Value. Map keys are sorted since Go maps
// carry no order.
func FromAny(x any) (types.Value, error) {
	switch x := x.(type) {
	case nil:
		return types.Null{}, nil
	case types.Value:
		return x.Clone(), nil
	case string:
		return types.String(x), nil
	case bool:
		return types.Bool(x), nil
	case int:
		return types.Number(x), nil
	case int64:
		return types.Number(x), nil
	case uint64:
		return types.Number(x), nil
	case float64:
		return types.Number(x), nil
	case []string:
		seq := make(types.Sequence, len(x))
		for i, s := range x {
			seq[i] = types.String(s)
		}
		return seq, nil
	case []any:
		seq := make(types.Sequence, len(x))
		for i, item := range x {
			v, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			seq[i] = v
		}
		return seq, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := types.NewMapping()
		for _, k := range keys {
			v, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			m.Set(k, v)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%T: %w", x, ErrTypeMismatch)
	}
}

// Encode renders doc as YAML, keeping key order.
func Encode(doc *types.Mapping) ([]byte, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(toNode(doc)); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return []byte(b.String()), nil
}

func toNode(v types.Value) *yaml.Node {
	switch v := v.(type) {
	case types.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(v)}
	case types.Number:
		f := float64(v)
		switch {
		case math.IsNaN(f):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}
		case math.IsInf(f, 1):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}
		case math.IsInf(f, -1):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}
		case f == math.Trunc(f):
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: v.String()}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v.String()}
	case types.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(v))}
	case types.Sequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			n.Content = append(n.Content, toNode(item))
		}
		return n
	case *types.Mapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range v.Keys() {
			item, _ := v.Get(k)
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				toNode(item))
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
