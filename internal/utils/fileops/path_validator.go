package fileops

import (
	"os"
	"path/filepath"

	"github.com/toyz/morsedoc/internal/errors"
)

// PathValidator cleans the paths handed to the file operations
type PathValidator struct{}

// NewPathValidator creates a new PathValidator instance
func NewPathValidator() *PathValidator {
	return &PathValidator{}
}

// Clean rejects empty paths and returns the lexically cleaned form.
// The path does not need to exist.
func (pv *PathValidator) Clean(path string) (string, error) {
	if path == "" {
		return "", errors.NewValidationError("path", "cannot be empty")
	}
	return filepath.Clean(path), nil
}

// CleanExisting is Clean for paths that must already exist
func (pv *PathValidator) CleanExisting(path string) (string, error) {
	cleanPath, err := pv.Clean(path)
	if err != nil {
		return "", err
	}
	if !pv.Exists(cleanPath) {
		return "", errors.WrapFileSystemError("find", cleanPath, os.ErrNotExist)
	}
	return cleanPath, nil
}

// Exists checks if a path exists
func (pv *PathValidator) Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsDir checks if a path exists and is a directory
func (pv *PathValidator) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
