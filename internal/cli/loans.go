package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/covenantops-backend/internal/domain"
	"github.com/heartmarshall/covenantops-backend/internal/engine"
)

func newLoansCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "List, create and inspect loans",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List loans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withEngine(cmd, func(e *engine.Engine) error {
				loans, err := e.ListLoans(cmd.Context())
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Print(loans, func(p *printer) {
					p.row("ID", "TITLE", "CREATED")
					for _, l := range loans {
						p.row(id(l.ID), l.Title, l.CreatedAt.Format(time.RFC3339))
					}
				})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create <title>",
		Short: "Create a loan",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return NewExitError(ExitUsage, "title must not be empty")
			}
			return opts.withEngine(cmd, func(e *engine.Engine) error {
				loan, err := e.CreateLoan(cmd.Context(), title)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Print(loan, func(p *printer) {
					p.line("created loan %d: %s", loan.ID, loan.Title)
				})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <loan-id>",
		Short: "Show a loan with its obligation summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loanID, err := parseID("loan-id", args[0])
			if err != nil {
				return err
			}
			return opts.withEngine(cmd, func(e *engine.Engine) error {
				detail, err := e.GetLoan(cmd.Context(), loanID)
				if err != nil {
					return err
				}
				return opts.formatter(cmd).Print(detail, func(p *printer) {
					printLoanDetail(p, detail)
				})
			})
		},
	})

	return cmd
}

func printLoanDetail(p *printer, d *domain.LoanDetail) {
	p.row("ID", id(d.ID))
	p.row("TITLE", d.Title)
	p.row("CREATED", d.CreatedAt.Format(time.RFC3339))
	p.row("TOTAL", itoa(d.Summary.Total))
	p.row("OVERDUE", itoa(d.Summary.Overdue))
	p.row("DUE SOON", itoa(d.Summary.DueSoon))
	p.row("ON TRACK", itoa(d.Summary.OnTrack))
	p.row("COMPLETED", itoa(d.Summary.Completed))
}
