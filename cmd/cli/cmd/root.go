// Package cmd provides the CLI commands for oneway-quote.
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"oneway-quote/core/catalog"
	"oneway-quote/core/cost"
	"oneway-quote/core/output"
	"oneway-quote/internal/config"
	"oneway-quote/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

// app is the state shared by every command of one invocation
type app struct {
	cfgFile string
	verbose bool

	money  *output.Money
	engine *cost.Engine
	now    func() time.Time
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	rootCmd := &cobra.Command{
		Use:   "oneway-quote",
		Short: "Price and invoice OneWay media store-setup jobs",
		Long: `oneway-quote prices marketplace store-setup work: product uploads,
photo designs, banners, videos and logo branding, plus ad hoc fees and a
discount. It prints the breakdown, the shareable invoice message, and can
export the invoice as an image or workbook.

Examples:
  oneway-quote quote --upload 40 --banner 2 --video 1 --logo client
  oneway-quote invoice --file andi.hcl --copy
  oneway-quote export --file andi.yaml --png andi.png --xlsx andi.xlsx
  oneway-quote interactive`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.oneway-quote.json)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newQuoteCmd(a),
		newInvoiceCmd(a),
		newExportCmd(a),
		newTiersCmd(a),
		newPitchCmd(a),
		newInteractiveCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration and sets up logging, money formatting and the engine
func (a *app) setup() error {
	path := a.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	config.Set(cfg)

	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	money, err := output.NewMoney(cfg.Locale.Language, cfg.Locale.Currency, cfg.Locale.Symbol)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	if err := cat.Check(); err != nil {
		return err
	}

	a.money = money
	a.engine = cost.NewEngine(cat)
	logging.Debug("configuration loaded")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "oneway-quote version %s\n", Version)
		},
	}
}
