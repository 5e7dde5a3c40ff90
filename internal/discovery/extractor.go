package discovery

import (
	"github.com/toyz/morsedoc/internal/models"
	"github.com/toyz/morsedoc/internal/utils"
	"github.com/toyz/morsedoc/pkg/component"
)

// Extractor copies optional component metadata onto records
type Extractor struct {
	diagnostics *utils.DiagnosticSystem
}

// NewExtractor creates an extractor narrating to diagnostics
func NewExtractor(diagnostics *utils.DiagnosticSystem) *Extractor {
	return &Extractor{diagnostics: diagnostics}
}

// Extract fills data fields, properties and services from c into record.
// Missing capabilities leave the corresponding slice empty.
func (e *Extractor) Extract(record *models.ComponentRecord, c component.Component) *models.ComponentRecord {
	e.diagnostics.Indent()
	defer e.diagnostics.Unindent()

	if exporter, ok := c.(component.DataFieldExporter); ok {
		for _, f := range exporter.DataFields() {
			record.DataFields = append(record.DataFields, models.FieldDoc{
				Name: f.Name, Value: f.Initial, Type: f.Type, Doc: f.Doc,
			})
		}
		if len(record.DataFields) > 0 {
			e.diagnostics.List("%d data fields found in %s", len(record.DataFields), record.Name)
		}
	}

	if exporter, ok := c.(component.PropertyExporter); ok {
		for _, p := range exporter.Properties() {
			record.Properties = append(record.Properties, models.FieldDoc{
				Name: p.Name, Value: p.Default, Type: p.Type, Doc: p.Doc,
			})
		}
		if len(record.Properties) > 0 {
			e.diagnostics.List("%d properties found in %s", len(record.Properties), record.Name)
		}
	}

	if exporter, ok := c.(component.ServiceExporter); ok {
		for _, s := range exporter.Services() {
			record.Services = append(record.Services, models.ServiceDoc{
				Name: s.Name, Async: s.Async, Doc: s.Doc, Handler: s.Handler,
			})
			e.diagnostics.List("service %s found in %s", s.Name, record.Name)
		}
	}

	return record
}
