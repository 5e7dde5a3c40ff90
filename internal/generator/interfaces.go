package generator

import "github.com/toyz/morsedoc/internal/models"

// PageGenerator renders component records into reference pages
type PageGenerator interface {
	GeneratePage(record *models.ComponentRecord) (*models.GeneratedPage, error)
}

// ImageFinder locates the picture of a component by its module name.
// It returns nil when the component has no picture.
type ImageFinder interface {
	Find(moduleName string) (*models.ImageRef, error)
}
