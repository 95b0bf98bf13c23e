// Package cmd - tiers command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"oneway-quote/core/catalog"
	"oneway-quote/core/types"
	"oneway-quote/core/ui"
	"oneway-quote/internal/config"
)

func newTiersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Print the price list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
			cat := a.engine.Catalog()

			for _, svc := range cat.Services() {
				w.Header(svc.Label)
				switch svc.Model {
				case catalog.Tiered:
					table := w.NewTable("Jumlah", "Tarif/unit").AlignRight(1)
					for _, tier := range svc.Tiers {
						table.AddRow(fmt.Sprintf("≥ %d", tier.Min), a.money.Format(tier.Rate))
					}
					table.Render()
				case catalog.Flat:
					w.Println("Tarif/unit: %s", a.money.Format(svc.FlatRate))
				}
				w.Println("")
			}

			w.Header("Branding Logo")
			table := w.NewTable("Pilihan", "Keterangan", "Harga").AlignRight(2)
			for _, sel := range types.LogoSelections {
				entry, ok := cat.Logo(sel)
				if !ok {
					continue
				}
				table.AddRow(entry.Option, entry.Label, a.money.Format(entry.Price))
			}
			table.Render()
			return nil
		},
	}
}
