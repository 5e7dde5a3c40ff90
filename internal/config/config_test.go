package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/morsedoc/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := NewLoader(WithSearchPath(t.TempDir())).Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultMedia, cfg.Media)
	assert.Equal(t, DefaultMaxImageWidth, cfg.MaxImageWidth)
	assert.Equal(t, DefaultSourceLink, cfg.SourceLink)
	assert.Equal(t, DefaultTestLink, cfg.TestLink)
	assert.Equal(t, DefaultAddr, cfg.Serve.Addr)
	assert.Equal(t, DefaultMode, cfg.Serve.Mode)
	assert.False(t, cfg.Verbose)
}

func TestLoad_FileFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	content := "output: build/doc\nmax_image_width: 320\nserve:\n  addr: 127.0.0.1:9000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "morsedoc.yaml"), []byte(content), 0o644))

	loader := NewLoader(WithSearchPath(dir))
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "build/doc", cfg.Output)
	assert.Equal(t, 320, cfg.MaxImageWidth)
	assert.Equal(t, "127.0.0.1:9000", cfg.Serve.Addr)
	assert.Equal(t, DefaultMedia, cfg.Media)
	assert.Equal(t, filepath.Join(dir, "morsedoc.yaml"), loader.ConfigFileUsed())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: from-file\n"), 0o644))
	t.Setenv("MORSEDOC_OUTPUT", "from-env")
	t.Setenv("MORSEDOC_SERVE_MODE", "debug")

	cfg, err := NewLoader(WithConfigFile(path)).Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output)
	assert.Equal(t, "debug", cfg.Serve.Mode)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	t.Setenv("MORSEDOC_OUTPUT", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--output", "from-flag", "--verbose"}))

	loader := NewLoader(WithSearchPath(t.TempDir()))
	require.NoError(t, loader.BindFlags(flags, map[string]string{"output": "output", "verbose": "verbose"}))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Output)
	assert.True(t, cfg.Verbose)
}

func TestBindFlag_MissingFlag(t *testing.T) {
	err := NewLoader().BindFlag("output", nil)
	require.Error(t, err)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))).Load()
	require.Error(t, err)

	var docErr errors.DocError
	require.True(t, stderrors.As(err, &docErr))
	assert.Equal(t, errors.ConfigurationErrorCode, docErr.ErrorCode())
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed\n"), 0o644))

	_, err := NewLoader(WithConfigFile(path)).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"zero width", "max_image_width: 0\n", "MaxImageWidth"},
		{"empty output", "output: \"\"\n", "Output"},
		{"bad mode", "serve:\n  mode: loud\n", "Mode"},
		{"bad addr", "serve:\n  addr: nowhere\n", "Addr"},
		{"quiet and verbose", "quiet: true\nverbose: true\n", "quiet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "morsedoc.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := NewLoader(WithConfigFile(path)).Load()
			require.Error(t, err)

			var validationErr *errors.ValidationError
			require.True(t, stderrors.As(err, &validationErr))
			assert.Contains(t, validationErr.Field, tt.field)
		})
	}
}

func TestWatch_WithoutFile(t *testing.T) {
	loader := NewLoader(WithSearchPath(t.TempDir()))
	_, err := loader.Load()
	require.NoError(t, err)

	assert.False(t, loader.Watch(func(*Config, error) {}))
}
