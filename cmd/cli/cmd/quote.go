// Package cmd - quote and invoice commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oneway-quote/adapters/share"
	"oneway-quote/core/output"
	"oneway-quote/core/ui"
	"oneway-quote/internal/config"
	"oneway-quote/internal/logging"
)

func newQuoteCmd(a *app) *cobra.Command {
	var (
		flags  quoteFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute and print the price breakdown",
		Long: `Compute the breakdown for a quote given as flags, a quote file, or both.

Examples:
  oneway-quote quote --upload 40 --banner 2 --video 1
  oneway-quote quote --file andi.hcl --discount-type percent --discount 10
  oneway-quote quote --file andi.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = config.Get().Output.DefaultFormat
			}
			formatter, err := output.NewRegistry(a.money, config.Get().Output.NoColor).Get(output.Format(format))
			if err != nil {
				return err
			}

			doc, err := a.document(cmd, &flags)
			if err != nil {
				return err
			}
			logging.Debug("quote computed",
				zap.String("grand_total", doc.Breakdown.GrandTotal.String()),
				zap.Int("lines", len(doc.Lines())))
			return formatter.Render(cmd.OutOrStdout(), doc)
		},
	}

	addQuoteFlags(cmd, &flags)
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (cli, text, json); default from config")
	return cmd
}

func newInvoiceCmd(a *app) *cobra.Command {
	var (
		flags    quoteFlags
		copyText bool
		whatsapp bool
	)

	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Print the invoice message for chat",
		Long: `Print the WhatsApp-ready invoice text.

With --copy the text is also placed on the clipboard through the terminal
(OSC52). With --whatsapp a wa.me link carrying the text is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.document(cmd, &flags)
			if err != nil {
				return err
			}
			text := output.NewTextFormatter(a.money).Invoice(doc)

			if whatsapp {
				fmt.Fprintln(cmd.OutOrStdout(), share.WhatsAppLink(text))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}

			if copyText {
				status := ui.NewWriter(cmd.ErrOrStderr(), config.Get().Output.NoColor)
				if err := share.CopyToClipboard(cmd.ErrOrStderr(), text); err != nil {
					return err
				}
				status.Success("Invoice disalin ke clipboard")
			}
			return nil
		},
	}

	addQuoteFlags(cmd, &flags)
	cmd.Flags().BoolVar(&copyText, "copy", false, "copy the invoice text to the clipboard")
	cmd.Flags().BoolVar(&whatsapp, "whatsapp", false, "print a WhatsApp share link instead of the text")
	return cmd
}
