// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-engine/internal/document"
	"github.com/pdiddy/resume-engine/pkg/types"
)

const resumeYAML = `name: Jane_Doe
linkedin_display: jdoe
summary: "**Senior** Engineer, 100% remote"
skills:
  C#_and_.NET: [ASP.NET, "F#"]
  Tools:
    build: ["Make & Mage"]
experience:
  - title: "**Lead** Developer"
    company: R&D Labs
    start: 2019-01
    end: Present
    highlights:
      - Cut costs by 30%
      - Shipped $1M product
  - title: Intern
    start: 2017_summer
    end: 2018-02
education:
  - school: MIT
    start: 2014-09
    end: 2018-06
    gpa: 3.9
`

func parse(t *testing.T, src string) *types.Mapping {
	t.Helper()
	doc, err := document.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func get(t *testing.T, v types.Value, path ...any) types.Value {
	t.Helper()
	for _, p := range path {
		switch p := p.(type) {
		case string:
			m, ok := v.(*types.Mapping)
			require.True(t, ok, "expected mapping at %q", p)
			v, ok = m.Get(p)
			require.True(t, ok, "missing key %q", p)
		case int:
			s, ok := v.(types.Sequence)
			require.True(t, ok, "expected sequence at %d", p)
			require.Less(t, p, len(s))
			v = s[p]
		}
	}
	return v
}

func TestDocument(t *testing.T) {
	doc := parse(t, resumeYAML)
	out := New(nil).Document(doc)

	assert.Equal(t, doc.Keys(), out.Keys(), "top-level keys are kept verbatim")
	assert.Equal(t, types.String(`Jane\_Doe`), get(t, out, "name"))
	assert.Equal(t, types.String(`\textbf{Senior} Engineer, 100\% remote`), get(t, out, "summary"))

	skills := get(t, out, "skills").(*types.Mapping)
	assert.Equal(t, []string{`C\#\_and\_.NET`, "Tools"}, skills.Keys())
	assert.Equal(t, types.Sequence{types.String("ASP.NET"), types.String(`F\#`)}, get(t, skills, `C\#\_and\_.NET`))
	assert.Equal(t, types.String(`Make \& Mage`), get(t, skills, "Tools", "build", 0))

	assert.Equal(t, types.String(`\textbf{Lead} Developer`), get(t, out, "experience", 0, "title"))
	assert.Equal(t, types.String(`R\&D Labs`), get(t, out, "experience", 0, "company"))
	assert.Equal(t, types.String("January 2019"), get(t, out, "experience", 0, "start"))
	assert.Equal(t, types.String("Present"), get(t, out, "experience", 0, "end"))
	assert.Equal(t, types.String(`Cut costs by 30\%`), get(t, out, "experience", 0, "highlights", 0))
	assert.Equal(t, types.String(`Shipped \$1M product`), get(t, out, "experience", 0, "highlights", 1))

	// Dates are formatted from the original value, so an unparseable date
	// comes back as the raw text rather than its escaped form.
	assert.Equal(t, types.String("2017_summer"), get(t, out, "experience", 1, "start"))
	assert.Equal(t, types.String("February 2018"), get(t, out, "experience", 1, "end"))

	assert.Equal(t, types.String("September 2014"), get(t, out, "education", 0, "start"))
	assert.Equal(t, types.String("June 2018"), get(t, out, "education", 0, "end"))
	assert.Equal(t, types.Number(3.9), get(t, out, "education", 0, "gpa"))
}

func TestDocumentRecordKeyOrder(t *testing.T) {
	doc := parse(t, resumeYAML)
	out := New(nil).Document(doc)

	rec := get(t, out, "experience", 0).(*types.Mapping)
	assert.Equal(t, []string{"title", "company", "start", "end", "highlights"}, rec.Keys())
}

func TestDocumentDoesNotModifyInput(t *testing.T) {
	doc := parse(t, resumeYAML)
	before := doc.CloneMapping()

	out := New(nil).Document(doc)
	require.Equal(t, before, doc)

	// Mutating the output must not reach the input.
	out.Set("name", types.String("changed"))
	get(t, out, "experience", 0).(*types.Mapping).Set("company", types.String("changed"))
	assert.Equal(t, before, doc)
}

func TestDocumentWithoutOptionalSections(t *testing.T) {
	doc := parse(t, "name: Jane\nemail: jane@example.com\n")
	out := New(nil).Document(doc)

	assert.Equal(t, []string{"name", "email"}, out.Keys())
	assert.False(t, out.Has("skills"))
	assert.False(t, out.Has("experience"))
	assert.False(t, out.Has("education"))
}

func TestDocumentEmpty(t *testing.T) {
	out := New(nil).Document(types.NewMapping())
	assert.Equal(t, 0, out.Len())
}

func TestValuePassesThroughScalars(t *testing.T) {
	tests := []struct {
		name string
		in   types.Value
	}{
		{"number", types.Number(42)},
		{"bool", types.Bool(false)},
		{"null", types.Null{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, Value(tt.in))
		})
	}
	assert.Equal(t, types.Null{}, Value(nil))
}

func TestValueEscapesNestedKeys(t *testing.T) {
	in := types.NewMapping()
	inner := types.NewMapping()
	inner.Set("100%", types.String("a_b"))
	in.Set("x&y", inner)

	out := Value(in).(*types.Mapping)
	assert.Equal(t, []string{`x\&y`}, out.Keys())
	assert.Equal(t, types.String(`a\_b`), get(t, out, `x\&y`, `100\%`))
}

func TestRecordListFallbacks(t *testing.T) {
	rule := RecordList("start")

	// A record field that holds a mapping instead of a list is walked generically.
	m := types.NewMapping()
	m.Set("start", types.String("2020-01"))
	got := rule(m).(*types.Mapping)
	assert.Equal(t, types.String("2020-01"), get(t, got, "start"))

	// Non-record elements are sanitized generically.
	seq := types.Sequence{types.String("50%"), types.Number(1)}
	assert.Equal(t, types.Sequence{types.String(`50\%`), types.Number(1)}, rule(seq))

	// Non-string dates are kept as they are.
	rec := types.NewMapping()
	rec.Set("start", types.Number(2020))
	got2 := rule(types.Sequence{rec}).(types.Sequence)
	assert.Equal(t, types.Number(2020), get(t, got2, 0, "start"))
}

func TestCustomRules(t *testing.T) {
	doc := parse(t, `projects:
  - name: cli_tool
    released: 2022-03
experience:
  - start: 2019-01
`)
	s := New(RecordRules([]string{"projects"}, []string{"released"}))
	out := s.Document(doc)

	assert.Equal(t, types.String("March 2022"), get(t, out, "projects", 0, "released"))
	assert.Equal(t, types.String(`cli\_tool`), get(t, out, "projects", 0, "name"))
	// experience has no rule in this table, so its dates stay as text.
	assert.Equal(t, types.String("2019-01"), get(t, out, "experience", 0, "start"))
}

func TestSanitizerCopiesRuleTable(t *testing.T) {
	rules := DefaultRules()
	s := New(rules)
	delete(rules, "experience")

	doc := parse(t, "experience:\n  - start: 2019-01\n")
	out := s.Document(doc)
	assert.Equal(t, types.String("January 2019"), get(t, out, "experience", 0, "start"))
}
