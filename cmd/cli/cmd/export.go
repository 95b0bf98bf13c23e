// Package cmd - export command
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oneway-quote/adapters/export"
	"oneway-quote/core/output"
	"oneway-quote/core/ui"
	"oneway-quote/internal/config"
	"oneway-quote/internal/errors"
	"oneway-quote/internal/logging"
)

// renderer is what the exporters have in common
type renderer interface {
	Render(w io.Writer, doc *output.Document) error
}

func newExportCmd(a *app) *cobra.Command {
	var (
		flags    quoteFlags
		pngPath  string
		xlsxPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the invoice as a PNG image and/or XLSX workbook",
		Long: `Export the invoice to files.

Examples:
  oneway-quote export --file andi.hcl --png andi.png
  oneway-quote export --upload 120 --xlsx rincian.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pngPath == "" && xlsxPath == "" {
				return errors.Input("nothing to export: pass --png and/or --xlsx")
			}

			doc, err := a.document(cmd, &flags)
			if err != nil {
				return err
			}

			status := ui.NewWriter(cmd.ErrOrStderr(), config.Get().Output.NoColor)
			targets := []struct {
				path string
				r    renderer
			}{
				{pngPath, export.NewImageRenderer(a.money, config.Get().Export.ImageWidth)},
				{xlsxPath, export.NewWorkbookRenderer()},
			}
			for _, t := range targets {
				if t.path == "" {
					continue
				}
				if err := writeFile(t.path, doc, t.r); err != nil {
					logging.Error("export failed", zap.String("path", t.path), zap.Error(err))
					return err
				}
				logging.Info("invoice exported", zap.String("path", t.path))
				status.Success("Tersimpan: %s", t.path)
			}
			return nil
		},
	}

	addQuoteFlags(cmd, &flags)
	cmd.Flags().StringVar(&pngPath, "png", "", "write the invoice image to this file")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write the breakdown workbook to this file")
	return cmd
}

func writeFile(path string, doc *output.Document, r renderer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Export("create "+path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Export("close "+path, cerr)
		}
	}()
	return r.Render(f, doc)
}
