// Package config loads generator settings from defaults, an optional
// morsedoc.yaml file, MORSEDOC_* environment variables and command flags.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/toyz/morsedoc/internal/errors"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. MORSEDOC_OUTPUT
	EnvPrefix = "MORSEDOC"
	// FileName is the config file looked up when none is given
	FileName = "morsedoc"
)

// Config holds every generator setting
type Config struct {
	Output        string      `mapstructure:"output" yaml:"output" validate:"required"`
	Media         string      `mapstructure:"media" yaml:"media"`
	MaxImageWidth int         `mapstructure:"max_image_width" yaml:"max_image_width" validate:"gt=0"`
	SourceLink    string      `mapstructure:"source_link" yaml:"source_link" validate:"required"`
	TestLink      string      `mapstructure:"test_link" yaml:"test_link" validate:"required"`
	Verbose       bool        `mapstructure:"verbose" yaml:"verbose"`
	Quiet         bool        `mapstructure:"quiet" yaml:"quiet"`
	Serve         ServeConfig `mapstructure:"serve" yaml:"serve"`
}

// ServeConfig configures the preview server
type ServeConfig struct {
	Addr  string `mapstructure:"addr" yaml:"addr" validate:"required,hostname_port"`
	Mode  string `mapstructure:"mode" yaml:"mode" validate:"oneof=debug release test"`
	Watch bool   `mapstructure:"watch" yaml:"watch"`
}

// Defaults
const (
	DefaultOutput        = "."
	DefaultMedia         = "../../media"
	DefaultMaxImageWidth = 600
	DefaultSourceLink    = "../../_modules/{path}.html"
	DefaultTestLink      = "../../_modules/base/{name}_testing.html"
	DefaultAddr          = "localhost:8000"
	DefaultMode          = "release"
)

// Loader resolves a Config from its sources
type Loader struct {
	viper      *viper.Viper
	configFile string
	searchPath []string
	validate   *validator.Validate
	mu         sync.Mutex
}

// Option customizes a Loader
type Option func(*Loader)

// WithConfigFile reads settings from an explicit file. A missing explicit
// file is an error.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.configFile = path
	}
}

// WithSearchPath adds a directory searched for morsedoc.yaml
func WithSearchPath(dir string) Option {
	return func(l *Loader) {
		l.searchPath = append(l.searchPath, dir)
	}
}

// NewLoader creates a loader with defaults applied
func NewLoader(options ...Option) *Loader {
	l := &Loader{
		viper:    viper.New(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range options {
		opt(l)
	}
	if len(l.searchPath) == 0 {
		l.searchPath = []string{"."}
	}

	l.viper.SetDefault("output", DefaultOutput)
	l.viper.SetDefault("media", DefaultMedia)
	l.viper.SetDefault("max_image_width", DefaultMaxImageWidth)
	l.viper.SetDefault("source_link", DefaultSourceLink)
	l.viper.SetDefault("test_link", DefaultTestLink)
	l.viper.SetDefault("verbose", false)
	l.viper.SetDefault("quiet", false)
	l.viper.SetDefault("serve.addr", DefaultAddr)
	l.viper.SetDefault("serve.mode", DefaultMode)
	l.viper.SetDefault("serve.watch", false)

	l.viper.SetEnvPrefix(EnvPrefix)
	l.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.viper.AutomaticEnv()

	return l
}

// BindFlag lets a command line flag override the setting under key
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return errors.NewValidationError("flag", fmt.Sprintf("no flag bound to %s", key))
	}
	if err := l.viper.BindPFlag(key, flag); err != nil {
		return errors.WrapConfigurationError(key, "bind", err)
	}
	return nil
}

// BindFlags binds the flags of set named in keys to their settings
func (l *Loader) BindFlags(set *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		if err := l.BindFlag(key, set.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the config file when present and returns the validated result
func (l *Loader) Load() (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.readFile(); err != nil {
		return nil, err
	}
	return l.decode()
}

// ConfigFileUsed returns the config file read by Load, if any
func (l *Loader) ConfigFileUsed() string {
	return l.viper.ConfigFileUsed()
}

// Watch calls fn with the reloaded configuration every time the config file
// changes. It does nothing when no config file was read.
func (l *Loader) Watch(fn func(*Config, error)) bool {
	if l.viper.ConfigFileUsed() == "" {
		return false
	}
	l.viper.OnConfigChange(func(event fsnotify.Event) {
		if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		l.mu.Lock()
		defer l.mu.Unlock()
		fn(l.decode())
	})
	l.viper.WatchConfig()
	return true
}

func (l *Loader) readFile() error {
	if l.configFile != "" {
		if _, err := os.Stat(l.configFile); err != nil {
			return errors.WrapConfigurationError(l.configFile, "read", err).
				WithSuggestions("Check the --config path")
		}
		l.viper.SetConfigFile(l.configFile)
	} else {
		l.viper.SetConfigName(FileName)
		l.viper.SetConfigType("yaml")
		for _, dir := range l.searchPath {
			l.viper.AddConfigPath(dir)
		}
	}

	if err := l.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configFile == "" && stderrors.As(err, &notFound) {
			return nil
		}
		return errors.WrapConfigurationError(l.source(), "read", err)
	}
	return nil
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.viper.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapConfigurationError(l.source(), "decode", err)
	}
	if err := cfg.Validate(l.validate); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) source() string {
	if used := l.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if l.configFile != "" {
		return l.configFile
	}
	return FileName + ".yaml"
}

// Validate checks cfg with struct tags and cross-field rules
func (c *Config) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}

	if err := v.Struct(c); err != nil {
		var fieldErrors validator.ValidationErrors
		if stderrors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			return errors.NewValidationError(first.Namespace(),
				fmt.Sprintf("failed on the '%s' rule", first.Tag()))
		}
		return errors.NewValidationError("config", err.Error())
	}

	if c.Verbose && c.Quiet {
		return errors.NewValidationError("quiet", "cannot be combined with verbose")
	}
	return nil
}
