package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/covenantops-backend/internal/engine"
)

type exportOptions struct {
	*RootOptions
	output  string
	apiBase string
}

func newExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &exportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a loan as a calendar or compliance packet",
		Long:  "Export a loan as a calendar or compliance packet. --format does not apply; the document is written as is.",
	}
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "write to this file instead of stdout")

	cmd.AddCommand(&cobra.Command{
		Use:   "ics <loan-id>",
		Short: "Export obligations as an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loanID, err := parseID("loan-id", args[0])
			if err != nil {
				return err
			}
			return opts.withEngine(cmd, func(e *engine.Engine) error {
				ics, err := e.ExportCalendar(cmd.Context(), loanID)
				if err != nil {
					return err
				}
				return opts.write(cmd, ics)
			})
		},
	})

	packet := &cobra.Command{
		Use:   "packet <loan-id>",
		Short: "Export an HTML compliance packet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loanID, err := parseID("loan-id", args[0])
			if err != nil {
				return err
			}
			return opts.withEngine(cmd, func(e *engine.Engine) error {
				html, err := e.ExportCompliancePacket(cmd.Context(), loanID, opts.apiBase)
				if err != nil {
					return err
				}
				return opts.write(cmd, html)
			})
		},
	}
	packet.Flags().StringVar(&opts.apiBase, "api-base", "http://localhost:8000/api", "API base URL used for evidence links")
	cmd.AddCommand(packet)

	return cmd
}

func (o *exportOptions) write(cmd *cobra.Command, data []byte) error {
	if o.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(o.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", o.output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", o.output, len(data))
	return nil
}
