package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/toyz/morsedoc/internal/errors"
	"github.com/toyz/morsedoc/internal/models"
	"github.com/toyz/morsedoc/pkg/component"
)

// Catalog output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// WriteCatalog prints records to w in the given format
func WriteCatalog(w io.Writer, records []*models.ComponentRecord, format string) error {
	switch format {
	case FormatText, "":
		return writeTextCatalog(w, records)
	case FormatYAML:
		return writeYAMLCatalog(w, records)
	default:
		err := errors.NewValidationError("format", fmt.Sprintf("unknown catalog format '%s'", format))
		err.WithSuggestions("Use --format text or --format yaml")
		return err
	}
}

func writeTextCatalog(w io.Writer, records []*models.ComponentRecord) error {
	var current component.Category
	for _, record := range records {
		if record.Category != current {
			current = record.Category
			if _, err := fmt.Fprintf(w, "%s:\n", current.Title()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  %-14s %-40s %d data, %d properties, %d services\n",
			record.ModuleName(), record.Name,
			len(record.DataFields), len(record.Properties), len(record.Services)); err != nil {
			return err
		}
	}
	return nil
}

func writeYAMLCatalog(w io.Writer, records []*models.ComponentRecord) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return errors.Wrap(errors.GenerationErrorCode, "failed to encode catalog", err)
	}
	return encoder.Close()
}
