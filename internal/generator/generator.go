// Package generator turns component records into reStructuredText pages.
package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/morsedoc/internal/docstring"
	"github.com/toyz/morsedoc/internal/errors"
	"github.com/toyz/morsedoc/internal/models"
	"github.com/toyz/morsedoc/internal/templates"
	"github.com/toyz/morsedoc/internal/utils"
	"github.com/toyz/morsedoc/pkg/component"
)

// PageExtension is the extension of generated pages
const PageExtension = ".rst"

// GeneratedMarker appears in the notice closing every generated page
const GeneratedMarker = "auto-generated from MORSE module"

// Default link patterns of the associated files section
const (
	DefaultSourceLink = "../../_modules/{path}.html"
	DefaultTestLink   = "../../_modules/base/{name}_testing.html"
)

// Options configures page generation
type Options struct {
	OutputRoot string // pages go to <OutputRoot>/<category>s/<module>.rst
	SourceLink string // link pattern with {path} and {name} placeholders
	TestLink   string
}

// Generator implements the PageGenerator interface
type Generator struct {
	options     Options
	renderer    *templates.Renderer
	images      ImageFinder
	parser      *docstring.Parser
	diagnostics *utils.DiagnosticSystem
}

var _ PageGenerator = (*Generator)(nil)

// NewGenerator creates a page generator using the built-in templates.
// images may be nil, in which case pages carry no picture.
func NewGenerator(options Options, images ImageFinder, diagnostics *utils.DiagnosticSystem) (*Generator, error) {
	return NewGeneratorWithTemplates(options, images, diagnostics, templates.DefaultTemplateRegistry)
}

// NewGeneratorWithTemplates creates a page generator with a custom template registry
func NewGeneratorWithTemplates(options Options, images ImageFinder, diagnostics *utils.DiagnosticSystem, registry *templates.TemplateRegistry) (*Generator, error) {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	if options.SourceLink == "" {
		options.SourceLink = DefaultSourceLink
	}
	if options.TestLink == "" {
		options.TestLink = DefaultTestLink
	}

	renderer, err := templates.NewRenderer(registry)
	if err != nil {
		return nil, err
	}

	return &Generator{
		options:     options,
		renderer:    renderer,
		images:      images,
		parser:      docstring.NewParser(diagnostics),
		diagnostics: diagnostics,
	}, nil
}

// PagePath returns where the page of record is written
func (g *Generator) PagePath(record *models.ComponentRecord) string {
	return filepath.Join(g.options.OutputRoot, record.Category.Dir(), record.ModuleName()+PageExtension)
}

// GeneratePage renders the page of one component
func (g *Generator) GeneratePage(record *models.ComponentRecord) (*models.GeneratedPage, error) {
	if record == nil {
		return nil, errors.New(errors.GenerationErrorCode, "record cannot be nil")
	}

	filePath := g.PagePath(record)

	var image *models.ImageRef
	if g.images != nil {
		found, err := g.images.Find(record.ModuleName())
		if err != nil {
			return nil, errors.NewGenerationError(record.Name, filePath, "illustrate", err)
		}
		image = found
	}

	data := g.BuildPageData(record, image, filepath.Dir(filePath))
	content, err := g.renderer.RenderPage(data)
	if err != nil {
		return nil, errors.NewGenerationError(record.Name, filePath, "render", err)
	}

	page := &models.GeneratedPage{
		Component: record.Name,
		Module:    record.Module,
		FilePath:  filePath,
		Content:   content,
	}
	if data.Image != nil {
		page.Image = data.Image.Path
	}
	return page, nil
}

// BuildPageData converts a record into template data. Image paths are made
// relative to pageDir.
func (g *Generator) BuildPageData(record *models.ComponentRecord, image *models.ImageRef, pageDir string) templates.PageData {
	data := templates.PageData{
		Title:            record.Name,
		Module:           record.Module,
		ShortDescription: strings.TrimSpace(record.ShortDescription),
		Links: []templates.LinkData{
			{Label: "Source code", URL: ExpandLink(g.options.SourceLink, record.Module)},
			{Label: "Unit-test", URL: ExpandLink(g.options.TestLink, record.Module)},
		},
		DataFields: fieldData(record.DataFields),
		Properties: fieldData(record.Properties),
	}

	if image != nil {
		data.Image = &templates.ImageData{Path: relativeTo(pageDir, image.Path), Width: image.Width}
	}

	if record.Doc != "" {
		data.Description = trimBlock(g.parser.Parse(record.Doc).Description)
	}

	for _, svc := range record.Services {
		data.Services = append(data.Services, g.serviceData(record, svc))
	}

	return data
}

func (g *Generator) serviceData(record *models.ComponentRecord, svc models.ServiceDoc) templates.ServiceData {
	if strings.TrimSpace(svc.Doc) == "" {
		g.diagnostics.Debug("service %s of %s is not documented", svc.Name, record.Name)
		return templates.ServiceData{Signature: svc.Name + "()", Async: svc.Async}
	}

	parsed := g.parser.Parse(svc.Doc)
	data := templates.ServiceData{
		Signature:   fmt.Sprintf("%s(%s)", svc.Name, strings.Join(parsed.ParamNames(), ", ")),
		Async:       svc.Async,
		Documented:  true,
		Description: trimBlock(parsed.Description),
	}
	for _, p := range parsed.Params {
		data.Params = append(data.Params, templates.ParamData{Name: p.Name, Doc: p.Doc})
	}
	if parsed.HasReturn() {
		data.Return = *parsed.Return
	}
	return data
}

func fieldData(fields []models.FieldDoc) []templates.FieldData {
	if len(fields) == 0 {
		return nil
	}
	result := make([]templates.FieldData, 0, len(fields))
	for _, f := range fields {
		result = append(result, templates.FieldData{
			Name:  f.Name,
			Type:  f.Type,
			Value: templates.FormatValue(f.Value),
			Doc:   strings.TrimSpace(f.Doc),
		})
	}
	return result
}

// ExpandLink fills the {path} and {name} placeholders of pattern for a
// dotted module name
func ExpandLink(pattern, module string) string {
	return strings.NewReplacer(
		"{path}", strings.ReplaceAll(module, ".", "/"),
		"{name}", component.ModuleName(module),
	).Replace(pattern)
}

// trimBlock drops the blank lines around a text block but keeps the
// indentation of its first line
func trimBlock(text string) string {
	text = strings.TrimRight(text, " \t\n")
	for {
		line, rest, found := strings.Cut(text, "\n")
		if !found || strings.TrimSpace(line) != "" {
			return text
		}
		text = rest
	}
}

func relativeTo(dir, path string) string {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return filepath.ToSlash(path)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
