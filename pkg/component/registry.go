package component

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/toyz/morsedoc/internal/errors"
	"github.com/toyz/morsedoc/internal/utils"
)

// Entry is a registered component together with its classification
type Entry struct {
	Module    string    `validate:"required,module"`
	Name      string    `validate:"required"`
	TypeName  string    `validate:"required"`
	Category  Category  `validate:"oneof=actuator sensor"`
	Component Component `validate:"-"`
}

// Key identifies an entry by category and module
func (e Entry) Key() string {
	return string(e.Category) + ":" + e.Module
}

// ModuleName returns the last segment of the dotted module name
func (e Entry) ModuleName() string {
	return ModuleName(e.Module)
}

// ModuleName returns the last segment of a dotted module name
func ModuleName(module string) string {
	if i := strings.LastIndex(module, "."); i >= 0 {
		return module[i+1:]
	}
	return module
}

// Registry holds every registered component keyed by (category, module).
// Display names are unique across categories.
type Registry struct {
	entries  *utils.BaseRegistry[string, Entry]
	validate *validator.Validate
}

// NewRegistry creates an empty component registry
func NewRegistry() *Registry {
	entries := utils.NewBaseRegistry[string, Entry]("component")
	entries.SetValidator(utils.ChainValidators[string, Entry](
		utils.NotEmptyKeyValidator[Entry]("component key"),
		utils.NoDuplicateValidator[string, Entry]("component"),
		uniqueDisplayName,
	))

	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("module", validateModule)

	return &Registry{entries: entries, validate: v}
}

// Register classifies c and adds it under the dotted module name
func (r *Registry) Register(module string, c Component) error {
	if c == nil || reflect.ValueOf(c).Kind() == reflect.Ptr && reflect.ValueOf(c).IsNil() {
		return errors.NewRegistrationError(module, "", "component cannot be nil")
	}

	entry := Entry{
		Module:    module,
		TypeName:  typeName(c),
		Category:  c.Category(),
		Component: c,
	}
	entry.Name = entry.TypeName
	if named, ok := c.(Named); ok && named.DisplayName() != "" {
		entry.Name = named.DisplayName()
	}

	if err := r.validate.Struct(entry); err != nil {
		return errors.NewRegistrationError(module, string(entry.Category), err.Error())
	}
	if err := r.validateCapabilities(c); err != nil {
		return errors.NewRegistrationError(module, string(entry.Category), err.Error())
	}

	if err := r.entries.Register(entry.Key(), entry); err != nil {
		var regErr *errors.RegistrationError
		if stderrors.As(err, &regErr) {
			return regErr
		}
		return errors.NewRegistrationError(module, string(entry.Category), err.Error())
	}
	return nil
}

// MustRegister is Register for static module tables; it panics on conflict
func (r *Registry) MustRegister(module string, c Component) {
	if err := r.Register(module, c); err != nil {
		panic(err)
	}
}

// Entries returns all entries in registration order
func (r *Registry) Entries() []Entry {
	return r.entries.Values()
}

// Lookup finds an entry by category and module
func (r *Registry) Lookup(category Category, module string) (Entry, bool) {
	return r.entries.Get(string(category) + ":" + module)
}

// Len returns the number of registered components
func (r *Registry) Len() int {
	return r.entries.Size()
}

func (r *Registry) validateCapabilities(c Component) error {
	if exporter, ok := c.(DataFieldExporter); ok {
		for i, field := range exporter.DataFields() {
			if err := r.validate.Struct(field); err != nil {
				return fmt.Errorf("data field #%d: %w", i, err)
			}
		}
	}
	if exporter, ok := c.(PropertyExporter); ok {
		for i, prop := range exporter.Properties() {
			if err := r.validate.Struct(prop); err != nil {
				return fmt.Errorf("property #%d: %w", i, err)
			}
		}
	}
	if exporter, ok := c.(ServiceExporter); ok {
		seen := make(map[string]bool)
		for i, svc := range exporter.Services() {
			if err := r.validate.Struct(svc); err != nil {
				return fmt.Errorf("service #%d: %w", i, err)
			}
			if svc.Handler == nil || reflect.ValueOf(svc.Handler).Kind() != reflect.Func {
				return fmt.Errorf("service '%s' needs a function handler", svc.Name)
			}
			if seen[svc.Name] {
				return fmt.Errorf("service '%s' is declared twice", svc.Name)
			}
			seen[svc.Name] = true
		}
	}
	return nil
}

// uniqueDisplayName rejects a second component using an existing display name
func uniqueDisplayName(key string, value Entry, existing map[string]Entry) error {
	for _, other := range existing {
		if other.Name == value.Name {
			return errors.DuplicateComponentError(value.Module, string(value.Category),
				fmt.Sprintf("display name '%s'", value.Name), other.Module)
		}
	}
	return nil
}

// validateModule accepts dotted lower-case names such as morse.sensors.gps
func validateModule(fl validator.FieldLevel) bool {
	module := fl.Field().String()
	for _, part := range strings.Split(module, ".") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return false
			}
		}
	}
	return true
}

func typeName(c Component) string {
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
