package models

import "github.com/toyz/morsedoc/pkg/component"

// ComponentRecord is everything the renderer needs to know about one
// component. Records are built by discovery and never mutated afterwards.
type ComponentRecord struct {
	Name             string             `json:"name" yaml:"name"`
	Category         component.Category `json:"category" yaml:"category"`
	ShortDescription string             `json:"short_description,omitempty" yaml:"short_description,omitempty"`
	Module           string             `json:"module" yaml:"module"`
	Doc              string             `json:"-" yaml:"-"`
	DataFields       []FieldDoc         `json:"data_fields,omitempty" yaml:"data_fields,omitempty"`
	Properties       []FieldDoc         `json:"properties,omitempty" yaml:"properties,omitempty"`
	Services         []ServiceDoc       `json:"services,omitempty" yaml:"services,omitempty"`
}

// FieldDoc documents a data field or a configuration property
type FieldDoc struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Doc   string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// ServiceDoc documents a remotely callable service
type ServiceDoc struct {
	Name    string `json:"name" yaml:"name"`
	Async   bool   `json:"async" yaml:"async"`
	Doc     string `json:"-" yaml:"-"`
	Handler any    `json:"-" yaml:"-"`
}

// ModuleName returns the last segment of the dotted module name; pages and
// images are named after it.
func (r *ComponentRecord) ModuleName() string {
	return component.ModuleName(r.Module)
}

// HasShortDescription reports whether a short description was declared
func (r *ComponentRecord) HasShortDescription() bool {
	return r.ShortDescription != ""
}
