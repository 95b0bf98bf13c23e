// Package cmd - interactive command
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"oneway-quote/adapters/share"
	"oneway-quote/adapters/tui"
	"oneway-quote/core/output"
	"oneway-quote/core/ui"
	"oneway-quote/internal/config"
	"oneway-quote/internal/errors"
)

func newInteractiveCmd(a *app) *cobra.Command {
	var (
		flags    quoteFlags
		copyText bool
	)

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Build a quote in an interactive form",
		Long: `Open a terminal form with a live invoice preview. Flags and --file
prefill the form.

Key bindings:
  ↑ / ↓          Select a field
  ← / → , - / +  Change the value (discount: Rp 10.000 or 1%)
  [ / ]          Change counts by 10
  Space / Enter  Cycle the logo option or discount type
  Enter          On the fee amount, add the extra fee
  ← / →          On the fee list, select a fee
  x / Delete     On the fee list, remove the selected fee
  r              Reset the form
  Ctrl+S         Finish and print the invoice
  q / Ctrl+C     Quit without printing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.session(cmd)
			if err != nil {
				return err
			}

			preview := output.NewCLIFormatter(a.money, config.Get().Output.NoColor)
			model := tui.New(s, a.engine, preview, config.Get().Business.Name)
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
				tea.WithContext(cmd.Context()),
			)
			final, err := p.Run()
			if err != nil {
				return errors.Internal("interactive form failed", err)
			}

			status := ui.NewWriter(cmd.ErrOrStderr(), config.Get().Output.NoColor)
			if m, ok := final.(tui.Model); !ok || !m.Done() {
				status.Warning("Dibatalkan")
				return nil
			}

			doc := output.NewDocument(config.Get().Business.Name, s, a.engine, a.now())
			text := output.NewTextFormatter(a.money).Invoice(doc)
			fmt.Fprintln(cmd.OutOrStdout(), text)

			if copyText {
				if err := share.CopyToClipboard(cmd.ErrOrStderr(), text); err != nil {
					return err
				}
				status.Success("Invoice disalin ke clipboard")
			}
			return nil
		},
	}

	addQuoteFlags(cmd, &flags)
	cmd.Flags().BoolVar(&copyText, "copy", false, "copy the invoice text to the clipboard when done")
	return cmd
}
