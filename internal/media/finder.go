// Package media locates component pictures below a media root.
package media

import (
	stderrors "errors"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/toyz/morsedoc/internal/models"
	"github.com/toyz/morsedoc/internal/utils"
	"github.com/toyz/morsedoc/internal/utils/fileops"
)

// Extension of component pictures
const Extension = ".png"

// Finder walks a media tree for <module>.png pictures
type Finder struct {
	root        string
	maxWidth    int
	diagnostics *utils.DiagnosticSystem
	widths      *utils.FileCache[int]
	errors      *fileops.ErrorWrapper
}

// NewFinder creates a finder rooted at root. Pictures are displayed at most
// maxWidth pixels wide.
func NewFinder(root string, maxWidth int, diagnostics *utils.DiagnosticSystem) *Finder {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	return &Finder{
		root:        root,
		maxWidth:    maxWidth,
		diagnostics: diagnostics,
		widths:      utils.NewFileCache[int](),
		errors:      fileops.NewErrorWrapper(),
	}
}

// Find returns the first <moduleName>.png found in walk order, or nil when
// the media root has none. A missing media root is not an error.
func (f *Finder) Find(moduleName string) (*models.ImageRef, error) {
	if _, err := os.Stat(f.root); stderrors.Is(err, fs.ErrNotExist) {
		f.diagnostics.Debug("media root %s does not exist", f.root)
		return nil, nil
	}

	target := moduleName + Extension
	var found string
	err := filepath.WalkDir(f.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == target {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, f.errors.WrapDirectoryWalkError(f.root, err)
	}
	if found == "" {
		return nil, nil
	}

	return &models.ImageRef{Path: found, Width: f.displayWidth(found)}, nil
}

// displayWidth caps the picture width to the configured maximum. Pictures
// that cannot be decoded are shown at the maximum width.
func (f *Finder) displayWidth(path string) int {
	width, err := f.widths.Load(path, decodeWidth)
	if err != nil {
		f.diagnostics.Warn("cannot read image %s: %v", path, err)
		return f.maxWidth
	}
	if width > f.maxWidth {
		return f.maxWidth
	}
	return width
}

// decodeWidth reads the width from the image header, decoding the whole
// picture only when the header is not understood.
func decodeWidth(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	cfg, _, err := image.DecodeConfig(file)
	file.Close()
	if err == nil {
		return cfg.Width, nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return 0, err
	}
	return img.Bounds().Dx(), nil
}
