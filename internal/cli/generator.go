package cli

import (
	"time"

	"github.com/toyz/morsedoc/internal/config"
	"github.com/toyz/morsedoc/internal/discovery"
	"github.com/toyz/morsedoc/internal/errors"
	"github.com/toyz/morsedoc/internal/generator"
	"github.com/toyz/morsedoc/internal/media"
	"github.com/toyz/morsedoc/internal/models"
	"github.com/toyz/morsedoc/internal/morse"
	"github.com/toyz/morsedoc/internal/utils"
	"github.com/toyz/morsedoc/internal/utils/fileops"
	"github.com/toyz/morsedoc/pkg/component"
)

// Generator coordinates discovery, rendering and writing of all pages
type Generator struct {
	modules     []morse.Module
	diagnostics *utils.DiagnosticSystem
	fileOps     *fileops.FileOps
	summary     models.GenerationSummary
	records     []*models.ComponentRecord
}

// NewGenerator creates a generator over modules. Without modules the
// compiled-in module list is used.
func NewGenerator(diagnostics *utils.DiagnosticSystem, modules ...morse.Module) *Generator {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	if len(modules) == 0 {
		modules = morse.Modules
	}
	return &Generator{
		modules:     modules,
		diagnostics: diagnostics,
		fileOps:     fileops.NewFileOps(),
	}
}

// GetSummary returns the summary of the last run
func (g *Generator) GetSummary() models.GenerationSummary {
	return g.summary
}

// Records returns the components discovered by the last run
func (g *Generator) Records() []*models.ComponentRecord {
	return g.records
}

// Discover registers every module and returns the component records
func (g *Generator) Discover() ([]*models.ComponentRecord, error) {
	reg, err := morse.NewRegistry(g.modules...)
	if err != nil {
		return nil, err
	}
	g.diagnostics.Debug("%d components registered", reg.Len())
	return discovery.NewDiscoverer(g.diagnostics).Discover(reg), nil
}

// Run generates one page per component below cfg.Output
func (g *Generator) Run(cfg *config.Config) error {
	startTime := time.Now()
	g.summary = models.GenerationSummary{GeneratedFiles: make([]string, 0)}
	g.diagnostics.Verbose("Starting generation at %s", startTime.Format("15:04:05"))

	g.diagnostics.Subsection("Component discovery")
	records, err := g.Discover()
	if err != nil {
		return err
	}
	g.records = records

	pages, err := generator.NewGenerator(generator.Options{
		OutputRoot: cfg.Output,
		SourceLink: cfg.SourceLink,
		TestLink:   cfg.TestLink,
	}, media.NewFinder(cfg.Media, cfg.MaxImageWidth, g.diagnostics), g.diagnostics)
	if err != nil {
		return err
	}

	g.diagnostics.Subsection("Page generation")
	for _, record := range records {
		page, err := pages.GeneratePage(record)
		if err != nil {
			return err
		}

		g.diagnostics.Writing(page.FilePath)
		if err := g.fileOps.WriteFile(page.FilePath, []byte(page.Content), 0o644); err != nil {
			return errors.NewGenerationError(record.Name, page.FilePath, "write", err)
		}

		g.count(record, page)
	}

	g.diagnostics.Progress("%d pages written in %s", len(g.summary.GeneratedFiles),
		time.Since(startTime).Round(time.Millisecond))
	return nil
}

func (g *Generator) count(record *models.ComponentRecord, page *models.GeneratedPage) {
	switch record.Category {
	case component.CategoryActuator:
		g.summary.ActuatorsFound++
	case component.CategorySensor:
		g.summary.SensorsFound++
	}
	g.summary.ServicesFound += len(record.Services)
	if page.Image != "" {
		g.summary.ImagesFound++
	}
	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, page.FilePath)
}
