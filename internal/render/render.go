// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render substitutes a sanitized résumé document into a LaTeX
// template. It uses text/template with Masterminds/sprig helpers; every
// string in the document is expected to be escaped already.
package render

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pdiddy/resume-engine/pkg/types"
)

const (
	templateDir    = "templates"
	templateSuffix = ".tex.tmpl"

	// DefaultTemplate is the built-in template used when none is configured.
	DefaultTemplate = "basic"

	defaultLeftDelim  = "<<"
	defaultRightDelim = ">>"
)

//go:embed templates/*.tex.tmpl
var builtin embed.FS

// ErrUnknownTemplate reports a template name with no built-in match.
var ErrUnknownTemplate = errors.New("unknown template")

// Renderer holds one parsed template. It is safe for concurrent use.
type Renderer struct {
	name string
	tmpl *template.Template
}

// New parses the template selected by cfg: TemplatePath when set, else the
// built-in named by Template (DefaultTemplate when empty).
func New(cfg types.RenderConfig) (*Renderer, error) {
	name, text, err := load(cfg)
	if err != nil {
		return nil, err
	}

	left, right := cfg.Delims.Left, cfg.Delims.Right
	if left == "" {
		left = defaultLeftDelim
	}
	if right == "" {
		right = defaultRightDelim
	}

	funcs := sprig.TxtFuncMap()
	for k, f := range (&view{}).funcs() {
		funcs[k] = f
	}
	tmpl, err := template.New(name).
		Delims(left, right).
		Funcs(funcs).
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return &Renderer{name: name, tmpl: tmpl}, nil
}

// Name returns the template name or file path.
func (r *Renderer) Name() string {
	return r.name
}

// Render executes the template against doc and writes the result to w.
// Templates see mappings as plain maps; the items function ranges over a
// mapping in document order.
func (r *Renderer) Render(w io.Writer, doc *types.Mapping) error {
	// The parsed template is never executed itself, so it can always be cloned.
	tmpl, err := r.tmpl.Clone()
	if err != nil {
		return fmt.Errorf("rendering %s: %w", r.name, err)
	}
	v := newView()
	data := v.convert(doc)
	if err := tmpl.Funcs(v.funcs()).Execute(w, data); err != nil {
		return fmt.Errorf("rendering %s: %w", r.name, err)
	}
	return nil
}

// Templates lists the built-in template names in sorted order.
func Templates() []string {
	entries, err := fs.ReadDir(builtin, templateDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), templateSuffix) {
			names = append(names, strings.TrimSuffix(e.Name(), templateSuffix))
		}
	}
	sort.Strings(names)
	return names
}

func load(cfg types.RenderConfig) (name, text string, err error) {
	if cfg.TemplatePath != "" {
		data, err := os.ReadFile(cfg.TemplatePath)
		if err != nil {
			return "", "", fmt.Errorf("reading template: %w", err)
		}
		return filepath.Base(cfg.TemplatePath), string(data), nil
	}

	name = cfg.Template
	if name == "" {
		name = DefaultTemplate
	}
	data, err := builtin.ReadFile(templateDir + "/" + name + templateSuffix)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownTemplate, name, strings.Join(Templates(), ", "))
	}
	return name, string(data), nil
}
