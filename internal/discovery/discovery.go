// Package discovery turns the component registry into component records.
package discovery

import (
	"sort"

	"github.com/toyz/morsedoc/internal/models"
	"github.com/toyz/morsedoc/internal/utils"
	"github.com/toyz/morsedoc/pkg/component"
)

// Discoverer builds component records from a registry
type Discoverer struct {
	diagnostics *utils.DiagnosticSystem
	extractor   *Extractor
}

// NewDiscoverer creates a discoverer narrating to diagnostics
func NewDiscoverer(diagnostics *utils.DiagnosticSystem) *Discoverer {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	return &Discoverer{
		diagnostics: diagnostics,
		extractor:   NewExtractor(diagnostics),
	}
}

// Discover returns one record per registered component, actuators first,
// each category ordered by module name.
func (d *Discoverer) Discover(reg *component.Registry) []*models.ComponentRecord {
	byCategory := make(map[component.Category][]component.Entry)
	for _, entry := range reg.Entries() {
		byCategory[entry.Category] = append(byCategory[entry.Category], entry)
	}

	var records []*models.ComponentRecord
	for _, category := range component.Categories {
		entries := byCategory[category]
		if len(entries) == 0 {
			continue
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Module < entries[j].Module
		})

		d.diagnostics.Category(category.Title())
		for _, entry := range entries {
			d.diagnostics.List("Found %s %s (%s)", category, entry.Name, entry.Module)
			records = append(records, d.extractor.Extract(d.newRecord(entry), entry.Component))
		}
	}

	return records
}

func (d *Discoverer) newRecord(entry component.Entry) *models.ComponentRecord {
	record := &models.ComponentRecord{
		Name:     entry.Name,
		Category: entry.Category,
		Module:   entry.Module,
	}
	if described, ok := entry.Component.(component.Described); ok {
		record.ShortDescription = described.ShortDescription()
	}
	if documented, ok := entry.Component.(component.Documented); ok {
		record.Doc = documented.Doc()
	}
	return record
}
