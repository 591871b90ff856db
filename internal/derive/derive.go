// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package derive adds display fields computed from profile URLs, such as
// "jdoe" for linkedin: https://linkedin.com/in/jdoe/.
package derive

import (
	"regexp"

	"github.com/pdiddy/resume-engine/pkg/types"
)

// DisplaySuffix is appended to a source field name to form its display field.
const DisplaySuffix = "_display"

// Source pairs a URL field with the host marker that precedes the profile
// identifier in that URL.
type Source struct {
	Field  string
	Marker string
}

// DisplayField returns the name of the derived field, e.g. "github_display".
func (s Source) DisplayField() string {
	return s.Field + DisplaySuffix
}

// DefaultSources lists the profile networks the built-in templates display.
var DefaultSources = []Source{
	{Field: "linkedin", Marker: "linkedin.com/in/"},
	{Field: "github", Marker: "github.com/"},
}

// Deriver computes display fields for a fixed set of sources. It is safe
// for concurrent use.
type Deriver struct {
	sources  []Source
	patterns []*regexp.Regexp
}

// New compiles a Deriver for sources. A nil slice means DefaultSources.
func New(sources []Source) *Deriver {
	if sources == nil {
		sources = DefaultSources
	}
	d := &Deriver{
		sources:  append([]Source(nil), sources...),
		patterns: make([]*regexp.Regexp, len(sources)),
	}
	for i, s := range sources {
		d.patterns[i] = regexp.MustCompile(regexp.QuoteMeta(s.Marker) + `([^/?]+)`)
	}
	return d
}

// Fields returns a copy of doc extended with a display field for every
// source whose URL matches and whose display field is not already set.
// Fields that are absent, not strings, or do not match are skipped.
func (d *Deriver) Fields(doc *types.Mapping) *types.Mapping {
	out := doc.CloneMapping()
	for i, s := range d.sources {
		if doc.Has(s.DisplayField()) {
			continue
		}
		v, ok := doc.Get(s.Field)
		if !ok {
			continue
		}
		url, ok := v.(types.String)
		if !ok {
			continue
		}
		if id := Identifier(d.patterns[i], string(url)); id != "" {
			out.Set(s.DisplayField(), types.String(id))
		}
	}
	return out
}

// Identifier returns the first capture group of pattern in url, or "".
func Identifier(pattern *regexp.Regexp, url string) string {
	m := pattern.FindStringSubmatch(url)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
