// Package templates renders component reference pages from named
// text/template sources.
package templates

import (
	"bytes"
	"text/template"

	"github.com/toyz/morsedoc/internal/errors"
)

// Renderer executes templates from a parsed registry
type Renderer struct {
	set *template.Template
}

// NewRenderer parses every template of registry
func NewRenderer(registry *TemplateRegistry) (*Renderer, error) {
	set, err := registry.Parse()
	if err != nil {
		return nil, errors.WrapTemplateError("registry", "parse", err)
	}
	return &Renderer{set: set}, nil
}

// Render executes the named template with data
func (r *Renderer) Render(name string, data interface{}) (string, error) {
	if r.set.Lookup(name) == nil {
		return "", errors.New(errors.TemplateErrorCode, "template not found: "+name).
			WithContext("template", name)
	}

	var buf bytes.Buffer
	if err := r.set.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}
	return buf.String(), nil
}

// RenderPage renders a full component page
func (r *Renderer) RenderPage(data PageData) (string, error) {
	return r.Render(PageTemplate, data)
}
