package fileops

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/morsedoc/internal/errors"
)

func TestWriteFile_CreatesParents(t *testing.T) {
	ops := NewFileOps()
	path := filepath.Join(t.TempDir(), "doc", "sensors", "gps.rst")

	require.NoError(t, ops.WriteFile(path, []byte("first"), 0o644))
	require.NoError(t, ops.WriteFile(path, []byte("second"), 0o644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
	assert.True(t, ops.IsDir(filepath.Dir(path)))
	assert.True(t, ops.Exists(path))
	assert.False(t, ops.IsDir(path))
}

func TestWriteFile_EmptyPath(t *testing.T) {
	err := NewFileOps().WriteFile("", []byte("x"), 0o644)

	var validationErr *errors.ValidationError
	require.True(t, stderrors.As(err, &validationErr))
	assert.Equal(t, "path", validationErr.Field)
}

func TestWriteFile_ParentIsAFile(t *testing.T) {
	ops := NewFileOps()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := ops.WriteFile(filepath.Join(blocker, "page.rst"), []byte("x"), 0o644)
	require.Error(t, err)

	var docErr errors.DocError
	require.True(t, stderrors.As(err, &docErr))
	assert.Equal(t, errors.FileSystemErrorCode, docErr.ErrorCode())
}

func TestReadDirAndRemoveFile(t *testing.T) {
	ops := NewFileOps()
	dir := t.TempDir()
	page := filepath.Join(dir, "gps.rst")
	require.NoError(t, ops.WriteFile(page, []byte("x"), 0o644))

	entries, err := ops.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gps.rst", entries[0].Name())

	content, err := ops.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))

	require.NoError(t, ops.RemoveFile(page))
	assert.False(t, ops.Exists(page))
}

func TestMissingPaths(t *testing.T) {
	ops := NewFileOps()
	missing := filepath.Join(t.TempDir(), "absent")

	_, err := ops.ReadDir(missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorIs(t, ops.RemoveFile(missing), os.ErrNotExist)
	_, err = ops.ReadFile(missing)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, ops.Exists(missing))
	assert.False(t, ops.IsDir(missing))
}

func TestPathValidator_Clean(t *testing.T) {
	pv := NewPathValidator()

	clean, err := pv.Clean("doc/./sensors/../actuators/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("doc", "actuators"), clean)

	clean, err = pv.Clean("../../media")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("..", "..", "media"), clean)
}
