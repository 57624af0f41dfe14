package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/covenantops-backend/internal/engine"
)

type auditOptions struct {
	*RootOptions
	loanID       int64
	obligationID int64
}

func newAuditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &auditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the audit log, newest first",
		Long: `Show the audit log, newest first. --loan-id keeps events on the loan and on
obligations that currently belong to it; --obligation-id keeps events on that
obligation. Given both, events matching either are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loanID, err := optionalID(cmd, "loan-id", opts.loanID)
			if err != nil {
				return err
			}
			obligationID, err := optionalID(cmd, "obligation-id", opts.obligationID)
			if err != nil {
				return err
			}

			return opts.withEngine(cmd, func(e *engine.Engine) error {
				events, err := e.ListAudit(cmd.Context(), loanID, obligationID)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Print(events, func(p *printer) {
					p.row("ID", "AT", "ENTITY", "ACTION", "DETAILS")
					for _, ev := range events {
						p.row(id(ev.ID), ev.At.Format(time.RFC3339), string(ev.EntityType)+" "+id(ev.EntityID), string(ev.Action), ev.DetailsJSON)
					}
				})
			})
		},
	}

	cmd.Flags().Int64Var(&opts.loanID, "loan-id", 0, "only events for this loan")
	cmd.Flags().Int64Var(&opts.obligationID, "obligation-id", 0, "only events for this obligation")

	return cmd
}
