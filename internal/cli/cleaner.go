package cli

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/toyz/morsedoc/internal/generator"
	"github.com/toyz/morsedoc/internal/utils"
	"github.com/toyz/morsedoc/internal/utils/fileops"
	"github.com/toyz/morsedoc/pkg/component"
)

// Cleaner handles cleaning up generated pages
type Cleaner struct {
	fileOps     *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
}

// NewCleaner creates a new cleaner
func NewCleaner(diagnostics *utils.DiagnosticSystem) *Cleaner {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	return &Cleaner{
		fileOps:     fileops.NewFileOps(),
		diagnostics: diagnostics,
	}
}

// CleanGeneratedPages removes the generated pages from the category
// directories below root and returns the removed files. A page counts as
// generated when it carries the generation notice; hand-written pages,
// other files and subdirectories are left alone.
func (c *Cleaner) CleanGeneratedPages(root string) ([]string, error) {
	var removedFiles []string

	for _, category := range component.Categories {
		dir := filepath.Join(root, category.Dir())
		if !c.fileOps.IsDir(dir) {
			continue
		}
		if err := c.cleanDirectory(dir, &removedFiles); err != nil {
			return removedFiles, err
		}
	}

	return removedFiles, nil
}

// cleanDirectory cleans a single category directory
func (c *Cleaner) cleanDirectory(dir string, removedFiles *[]string) error {
	entries, err := c.fileOps.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), generator.PageExtension) {
			continue
		}

		page := filepath.Join(dir, entry.Name())
		content, err := c.fileOps.ReadFile(page)
		if err != nil {
			return err
		}
		if !bytes.Contains(content, []byte(generator.GeneratedMarker)) {
			c.diagnostics.Verbose("Keeping %s, not a generated page", page)
			continue
		}

		if err := c.fileOps.RemoveFile(page); err != nil {
			return err
		}
		c.diagnostics.Verbose("Removed %s", page)
		*removedFiles = append(*removedFiles, page)
	}
	return nil
}
