package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"github.com/heartmarshall/covenantops-backend/internal/engine"
)

func newObligationsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "obligations",
		Aliases: []string{"ob"},
		Short:   "List and change obligations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <loan-id>",
		Short: "List a loan's obligations by next due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loanID, err := parseID("loan-id", args[0])
			if err != nil {
				return err
			}
			return opts.withEngine(cmd, func(e *engine.Engine) error {
				obligations, err := e.ListObligations(cmd.Context(), loanID)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Print(obligations, func(p *printer) {
					p.row("ID", "STATUS", "DUE", "FREQUENCY", "NAME")
					for _, o := range obligations {
						p.row(id(o.ID), string(o.Status), orDash(o.DueDate), string(o.Frequency), o.Name)
					}
				})
			})
		},
	})

	cmd.AddCommand(newTransitionCommand(opts, "complete", "Mark an obligation completed",
		func(e *engine.Engine) func(context.Context, int64) (*domain.Obligation, error) {
			return e.CompleteObligation
		}))
	cmd.AddCommand(newTransitionCommand(opts, "reopen", "Move a completed obligation back to on track",
		func(e *engine.Engine) func(context.Context, int64) (*domain.Obligation, error) {
			return e.ReopenObligation
		}))

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <obligation-id>",
		Short: "Delete an obligation and its evidence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obligationID, err := parseID("obligation-id", args[0])
			if err != nil {
				return err
			}
			return opts.withEngine(cmd, func(e *engine.Engine) error {
				res, err := e.DeleteObligation(cmd.Context(), obligationID)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Print(res, func(p *printer) {
					p.line("deleted obligation %d", obligationID)
				})
			})
		},
	})

	return cmd
}

func newTransitionCommand(
	opts *RootOptions,
	name, short string,
	op func(e *engine.Engine) func(context.Context, int64) (*domain.Obligation, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <obligation-id>", name),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obligationID, err := parseID("obligation-id", args[0])
			if err != nil {
				return err
			}
			return opts.withEngine(cmd, func(e *engine.Engine) error {
				o, err := op(e)(cmd.Context(), obligationID)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Print(o, func(p *printer) {
					p.line("obligation %d: %s", o.ID, o.Status)
				})
			})
		},
	}
}
