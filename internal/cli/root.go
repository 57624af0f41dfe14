// Package cli implements the covenantops command line.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/covenantops-backend/internal/app"
	"github.com/heartmarshall/covenantops-backend/internal/engine"
)

// Opener builds the engine a command runs against from the config file at
// configPath. The caller closes it.
type Opener func(ctx context.Context, configPath string) (*engine.Engine, error)

// RootOptions holds global flags and the engine opener shared by all commands.
type RootOptions struct {
	Format     string
	ConfigPath string
	open       Opener
}

// ValidFormats lists the accepted --format values.
var ValidFormats = []string{"text", "json", "yaml"}

// OpenFromConfig loads configuration the same way the server does and opens the
// configured store.
func OpenFromConfig(ctx context.Context, configPath string) (*engine.Engine, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return engine.Open(ctx, app.NewLogger(cfg.Log), *cfg)
}

// NewRootCommand creates the covenantops root command.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "covenantops",
		Short: "Loan covenant obligation tracker",
		Long: `Track loans, their compliance obligations, supporting evidence and the
audit trail of every change. Data lives in a single document in the configured
key-value store (memory, file, sqlite, postgres or s3).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitUsage, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newVersionCommand(opts))
	cmd.AddCommand(newSeedCommand(opts))
	cmd.AddCommand(newLoansCommand(opts))
	cmd.AddCommand(newObligationsCommand(opts))
	cmd.AddCommand(newAuditCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newDemoModeCommand(opts))

	return cmd
}

// withEngine opens the engine, runs fn and closes it.
func (o *RootOptions) withEngine(cmd *cobra.Command, fn func(e *engine.Engine) error) error {
	e, err := o.open(cmd.Context(), o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitFailure, "open engine", err)
	}
	defer e.Close()
	return fn(e)
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

func newServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API. Configuration comes from --config, else CONFIG_PATH (default ./config.yaml),
and the environment. An empty store is seeded with demo data on first start
unless ENGINE_SEED_ON_FIRST_RUN=false.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts.ConfigPath)
		},
	}
}

func newVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.formatter(cmd).Print(map[string]string{
				"version":    app.Version,
				"commit":     app.Commit,
				"build_time": app.BuildTime,
			}, func(p *printer) {
				p.line("%s", app.BuildVersion())
			})
		},
	}
}
