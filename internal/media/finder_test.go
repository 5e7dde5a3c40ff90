package media

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/morsedoc/internal/utils"
)

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, imaging.Save(imaging.New(width, height, image.Black.C), path))
}

func TestFinder_FindsNestedImage(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "sensors", "gyroscope.png"), 120, 80)

	image, err := NewFinder(root, 600, nil).Find("gyroscope")
	require.NoError(t, err)
	require.NotNil(t, image)
	assert.Equal(t, filepath.Join(root, "sensors", "gyroscope.png"), image.Path)
	assert.Equal(t, 120, image.Width)
}

func TestFinder_CapsWidth(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "gps.png"), 900, 10)

	image, err := NewFinder(root, 600, nil).Find("gps")
	require.NoError(t, err)
	require.NotNil(t, image)
	assert.Equal(t, 600, image.Width)
}

func TestFinder_FirstMatchInWalkOrderWins(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "a", "pose.png"), 10, 10)
	writePNG(t, filepath.Join(root, "b", "pose.png"), 20, 20)

	image, err := NewFinder(root, 600, nil).Find("pose")
	require.NoError(t, err)
	require.NotNil(t, image)
	assert.Equal(t, filepath.Join(root, "a", "pose.png"), image.Path)
}

func TestFinder_NoMatch(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "other.png"), 10, 10)

	image, err := NewFinder(root, 600, nil).Find("battery")
	require.NoError(t, err)
	assert.Nil(t, image)

	image, err = NewFinder(filepath.Join(root, "missing"), 600, nil).Find("battery")
	require.NoError(t, err)
	assert.Nil(t, image)
}

func TestFinder_UndecodableImageUsesMaxWidth(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "odometry.png"), []byte("not a png"), 0o644))

	var out bytes.Buffer
	diagnostics := utils.NewBufferedDiagnostics(utils.DiagnosticWarn, &out)

	image, err := NewFinder(root, 450, diagnostics).Find("odometry")
	require.NoError(t, err)
	require.NotNil(t, image)
	assert.Equal(t, 450, image.Width)
	assert.Contains(t, out.String(), "cannot read image")
}

func TestFinder_WidthFromHeaderOnly(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "lidar.png")
	writePNG(t, path, 300, 40)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	// signature and IHDR chunk only, pixel data cut off
	require.NoError(t, os.WriteFile(path, content[:33], 0o644))
	_, err = imaging.Open(path)
	require.Error(t, err)

	image, err := NewFinder(root, 600, nil).Find("lidar")
	require.NoError(t, err)
	require.NotNil(t, image)
	assert.Equal(t, 300, image.Width)
}
