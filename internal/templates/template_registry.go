package templates

import (
	"fmt"
	"text/template"
)

// Template names
const (
	PageTemplate          = "page"
	TitleTemplate         = "title"
	ImageTemplate         = "image"
	SummaryTemplate       = "summary"
	AssociatedTemplate    = "associated-files"
	ExportedDataTemplate  = "exported-data"
	DataFieldTemplate     = "data-field"
	ServicesTemplate      = "services"
	ServiceTemplate       = "service"
	ConfigurationTemplate = "configuration"
	PropertyTemplate      = "property"
	NoticeTemplate        = "notice"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
	order     []string
}

// NewTemplateRegistry creates a new template registry with all page templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerPageTemplates()
	registry.registerSectionTemplates()
	registry.registerServiceTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// Set adds or replaces a named template
func (tr *TemplateRegistry) Set(name, source string) {
	if _, exists := tr.templates[name]; !exists {
		tr.order = append(tr.order, name)
	}
	tr.templates[name] = source
}

// Names returns the template names in registration order
func (tr *TemplateRegistry) Names() []string {
	names := make([]string, len(tr.order))
	copy(names, tr.order)
	return names
}

// Parse compiles every registered template into one set so templates can
// include each other by name.
func (tr *TemplateRegistry) Parse() (*template.Template, error) {
	set := template.New("morsedoc").Funcs(FuncMap())
	for _, name := range tr.order {
		if _, err := set.New(name).Parse(tr.templates[name]); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	return set, nil
}

// registerPageTemplates registers the page skeleton and its header
func (tr *TemplateRegistry) registerPageTemplates() {
	tr.Set(PageTemplate, `{{template "title" .}}{{template "image" .}}{{template "summary" .}}`+
		`{{template "associated-files" .}}{{template "exported-data" .}}{{template "services" .}}`+
		`{{template "configuration" .}}{{template "notice" .}}`)

	tr.Set(TitleTemplate, `{{.Title}}
{{underline "=" .Title}}

`)

	tr.Set(ImageTemplate, `{{with .Image}}.. image:: {{.Path}}
  :align: center
  :width: {{.Width}}

{{end}}`)

	tr.Set(SummaryTemplate, `{{with .ShortDescription}}**{{.}}**

{{end}}{{with .Description}}{{.}}

{{end}}`)

	tr.Set(NoticeTemplate, `*(This page has been auto-generated from MORSE module {{.Module}}.)*
`)
}

// registerSectionTemplates registers the link, data and configuration sections
func (tr *TemplateRegistry) registerSectionTemplates() {
	tr.Set(AssociatedTemplate, `Associated files
{{underline "-" "Associated files"}}

{{range .Links}}- {{link .Label .URL}}
{{end}}
`)

	tr.Set(ExportedDataTemplate, `Exported data
{{underline "-" "Exported data"}}

{{range .DataFields}}{{template "data-field" .}}
{{else}}No data field documented (see above for possible notes).
{{end}}
`)

	tr.Set(DataFieldTemplate,
		`- {{literal .Name}} ({{with .Type}}{{.}}, {{end}}initial value: {{literal .Value}}){{with .Doc}}: {{.}}{{end}}`)

	tr.Set(ConfigurationTemplate, `{{$heading := printf "Configuration parameters for %s" .Title}}{{$heading}}
{{underline "-" $heading}}

{{range .Properties}}{{template "property" .}}
{{else}}No configurable parameter.
{{end}}
`)

	tr.Set(PropertyTemplate,
		`- {{literal .Name}} ({{with .Type}}{{.}}, {{end}}default: {{literal .Value}}){{with .Doc}}: {{.}}{{end}}`)
}

// registerServiceTemplates registers the service list and entry templates
func (tr *TemplateRegistry) registerServiceTemplates() {
	tr.Set(ServicesTemplate, `{{$heading := printf "Services for %s" .Title}}{{$heading}}
{{underline "-" $heading}}

{{range .Services}}{{template "service" .}}

{{else}}This component does not provide any service.

{{end}}`)

	tr.Set(ServiceTemplate, `- {{literal .Signature}} ({{if .Async}}non blocking{{else}}blocking{{end}}): `+
		`{{if .Documented}}{{indent 2 .Description}}{{else}}(no documentation yet){{end}}
{{- if .Params}}

  - Parameters
{{range .Params}}
    - {{literal .Name}}: {{.Doc}}
{{- end}}
{{- end}}
{{- if .Return}}

  - Return value

    {{.Return}}
{{- end}}`)
}

// DefaultTemplateRegistry holds the built-in page templates
var DefaultTemplateRegistry = NewTemplateRegistry()
