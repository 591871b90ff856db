// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sanitize prepares résumé documents for literal substitution into a
// LaTeX template. Every string leaf goes through markup conversion and then
// escaping; date fields inside record lists are reformatted for display.
//
// All functions are pure. The input document is never modified and the
// output shares no containers with it.
package sanitize

import (
	"github.com/pdiddy/resume-engine/pkg/types"
)

// Rule transforms the original value of one top-level field.
type Rule func(original types.Value) types.Value

// Default field and date names understood by the built-in templates.
var (
	DefaultRecordFields = []string{"experience", "education"}
	DefaultDateFields   = []string{"start", "end"}
)

// DefaultRules returns the rule table used by the built-in templates:
// experience and education are record lists with start and end dates.
func DefaultRules() map[string]Rule {
	return RecordRules(DefaultRecordFields, DefaultDateFields)
}

// RecordRules builds a rule table that treats each of fields as a record
// list whose dateFields are formatted with FormatDate.
func RecordRules(fields, dateFields []string) map[string]Rule {
	rule := RecordList(dateFields...)
	rules := make(map[string]Rule, len(fields))
	for _, f := range fields {
		rules[f] = rule
	}
	return rules
}

// Sanitizer applies per-field rules on top of the generic recursive walk.
// It holds no mutable state and is safe for concurrent use.
type Sanitizer struct {
	rules map[string]Rule
}

// New returns a Sanitizer using rules. A nil table means DefaultRules.
func New(rules map[string]Rule) *Sanitizer {
	if rules == nil {
		rules = DefaultRules()
	}
	copied := make(map[string]Rule, len(rules))
	for k, r := range rules {
		copied[k] = r
	}
	return &Sanitizer{rules: copied}
}

// Document sanitizes every top-level field of doc. Top-level keys are kept
// verbatim because templates address them by name; fields with a rule go
// through that rule, all others through Value.
func (s *Sanitizer) Document(doc *types.Mapping) *types.Mapping {
	out := types.NewMapping()
	for _, key := range doc.Keys() {
		v, _ := doc.Get(key)
		if rule, ok := s.rules[key]; ok {
			out.Set(key, rule(v))
			continue
		}
		out.Set(key, Value(v))
	}
	return out
}

// Value sanitizes v recursively. Mapping keys and string leaves are passed
// through Text; numbers, booleans and nulls are returned unchanged.
func Value(v types.Value) types.Value {
	switch v := v.(type) {
	case types.String:
		return types.String(Text(string(v)))
	case types.Sequence:
		out := make(types.Sequence, len(v))
		for i, item := range v {
			out[i] = Value(item)
		}
		return out
	case *types.Mapping:
		return mapping(v)
	case nil:
		return types.Null{}
	default:
		return v.Clone()
	}
}

func mapping(m *types.Mapping) *types.Mapping {
	out := types.NewMapping()
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		out.Set(Escape(key), Value(v))
	}
	return out
}

// RecordList returns a Rule for a sequence of records. Each record is
// sanitized with Value, then each of dateFields present in the record is
// replaced by FormatDate applied to its original, unescaped value.
// Elements that are not records, and fields that are not sequences, are
// sanitized with Value alone.
func RecordList(dateFields ...string) Rule {
	fields := append([]string(nil), dateFields...)
	return func(original types.Value) types.Value {
		seq, ok := original.(types.Sequence)
		if !ok {
			return Value(original)
		}
		out := make(types.Sequence, len(seq))
		for i, item := range seq {
			out[i] = record(item, fields)
		}
		return out
	}
}

func record(item types.Value, dateFields []string) types.Value {
	rec, ok := item.(*types.Mapping)
	if !ok {
		return Value(item)
	}
	out := mapping(rec)
	for _, f := range dateFields {
		if v, ok := rec.Get(f); ok {
			out.Set(Escape(f), FormatDateValue(v))
		}
	}
	return out
}
