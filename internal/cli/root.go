// Package cli provides the morsedoc command line interface.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/toyz/morsedoc/internal/config"
	"github.com/toyz/morsedoc/internal/errors"
	"github.com/toyz/morsedoc/internal/morse"
	"github.com/toyz/morsedoc/internal/preview"
	"github.com/toyz/morsedoc/internal/utils"
)

// app is the state shared by all commands of one invocation
type app struct {
	configFile  string
	output      io.Writer // diagnostics sink, console when nil
	modules     []morse.Module
	loader      *config.Loader
	cfg         *config.Config
	diagnostics *utils.DiagnosticSystem
}

// flagKeys maps flag names to configuration keys
var flagKeys = map[string]string{
	"output":          "output",
	"media":           "media",
	"verbose":         "verbose",
	"quiet":           "quiet",
	"max-image-width": "max_image_width",
	"addr":            "serve.addr",
	"mode":            "serve.mode",
	"watch":           "serve.watch",
}

// Execute creates and runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Running the root command
// generates all pages.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "morsedoc",
		Short: "Generate reference pages for MORSE sensors and actuators",
		Long: "morsedoc introspects the compiled-in sensor and actuator components and writes one\n" +
			"reStructuredText page per component below the output directory.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runGenerate,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Path to a morsedoc.yaml config file")
	flags.StringP("output", "o", config.DefaultOutput, "Output root; pages go to <output>/actuators and <output>/sensors")
	flags.String("media", config.DefaultMedia, "Directory searched recursively for <module>.png pictures")
	flags.BoolP("verbose", "v", false, "Enable verbose output")
	flags.BoolP("quiet", "q", false, "Only show errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.AddCommand(
		a.newGenerateCommand(),
		a.newListCommand(),
		a.newCleanCommand(),
		a.newServeCommand(),
	)
	return rootCmd
}

func (a *app) newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write one page per component",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}
	cmd.Flags().Int("max-image-width", config.DefaultMaxImageWidth, "Maximum displayed picture width in pixels")
	return cmd
}

func (a *app) newListCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the discovered component catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := NewGenerator(a.diagnostics, a.modules...).Discover()
			if err != nil {
				return err
			}
			return WriteCatalog(cmd.OutOrStdout(), records, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", FormatText, "Output format: text or yaml")
	return cmd
}

func (a *app) newCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove generated pages",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			removed, err := NewCleaner(a.diagnostics).CleanGeneratedPages(a.cfg.Output)
			if err != nil {
				return err
			}
			a.diagnostics.Success("%d generated pages removed", len(removed))
			return nil
		},
	}
}

func (a *app) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Generate the pages and serve them for preview",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	cmd.Flags().String("addr", config.DefaultAddr, "Listen address")
	cmd.Flags().String("mode", config.DefaultMode, "Server mode: debug, release or test")
	cmd.Flags().Bool("watch", false, "Regenerate pages when the config file changes")
	cmd.Flags().Int("max-image-width", config.DefaultMaxImageWidth, "Maximum displayed picture width in pixels")
	return cmd
}

// setup loads the configuration and creates the diagnostic system
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var options []config.Option
	if a.configFile != "" {
		options = append(options, config.WithConfigFile(a.configFile))
	}
	a.loader = config.NewLoader(options...)

	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := a.loader.BindFlag(key, flag); err != nil {
				return err
			}
		}
	}

	cfg, err := a.loader.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.diagnostics = a.newDiagnostics(cfg)

	if used := a.loader.ConfigFileUsed(); used != "" {
		a.diagnostics.Verbose("Using config file %s", used)
	}
	return nil
}

func (a *app) newDiagnostics(cfg *config.Config) *utils.DiagnosticSystem {
	level := utils.DiagnosticInfo
	switch {
	case cfg.Quiet:
		level = utils.DiagnosticError
	case cfg.Verbose:
		level = utils.DiagnosticVerbose
	}
	if a.output != nil {
		return utils.NewBufferedDiagnostics(level, a.output)
	}
	return utils.NewDiagnosticSystem(level)
}

func (a *app) runGenerate(_ *cobra.Command, _ []string) error {
	_, err := a.generate()
	return err
}

func (a *app) generate() (*Generator, error) {
	a.diagnostics.Section("MORSE component documentation")

	gen := NewGenerator(a.diagnostics, a.modules...)
	if err := gen.Run(a.cfg); err != nil {
		return nil, err
	}

	summary := gen.GetSummary()
	a.diagnostics.Summary("Generation Complete!", map[string]interface{}{
		"Actuators found": summary.ActuatorsFound,
		"Sensors found":   summary.SensorsFound,
		"Services found":  summary.ServicesFound,
		"Images found":    summary.ImagesFound,
		"Pages written":   len(summary.GeneratedFiles),
	})
	return gen, nil
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	gen, err := a.generate()
	if err != nil {
		return err
	}
	server := preview.NewServer(preview.Config{Root: a.cfg.Output, Mode: a.cfg.Serve.Mode}, gen.Records(), a.diagnostics)
	addr := a.cfg.Serve.Addr

	if a.cfg.Serve.Watch {
		watching := a.loader.Watch(func(cfg *config.Config, err error) {
			if err != nil {
				a.diagnostics.Error("Config reload failed: %v", err)
				return
			}
			a.cfg = cfg
			gen, err := a.generate()
			if err != nil {
				a.diagnostics.Error("Regeneration failed: %v", err)
				return
			}
			server.SetRecords(gen.Records())
		})
		if !watching {
			a.diagnostics.Warn("--watch needs a config file; pages will not be regenerated")
		}
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Run(ctx, addr)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// ReportError prints err with its suggestions to stderr
func ReportError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var docErr errors.DocError
	if stderrors.As(err, &docErr) {
		for _, hint := range docErr.Suggestions() {
			fmt.Fprintf(os.Stderr, "  hint: %s\n", hint)
		}
	}
}
