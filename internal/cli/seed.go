package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/covenantops-backend/internal/engine"
)

func newSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with freshly generated demo data",
		Long: `Replace all data with freshly generated demo data: two loans, 8-12
obligations each and evidence on roughly a third of them. The audit log and
id counters are reset.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEngine(cmd, func(e *engine.Engine) error {
				res, err := e.ResetDemoData(cmd.Context())
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Print(res, func(p *printer) {
					p.line("generated %d loans, %d obligations, %d evidence files", res.Loans, res.Obligations, res.Evidence)
				})
			})
		},
	}
}

func newDemoModeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "demo-mode [on|off]",
		Short:     "Show or set the demo-mode flag",
		Long:      "Show the demo-mode flag, or set it. Turning it on seeds an empty store.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEngine(cmd, func(e *engine.Engine) error {
				ctx := cmd.Context()
				if len(args) == 1 {
					if err := e.SetDemoMode(ctx, args[0] == "on"); err != nil {
						return err
					}
				}
				on, err := e.DemoMode(ctx)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Print(map[string]bool{"enabled": on}, func(p *printer) {
					state := "off"
					if on {
						state = "on"
					}
					p.line("demo mode: %s", state)
				})
			})
		},
	}
}
