// Package cmd - config command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oneway-quote/core/ui"
	"oneway-quote/internal/config"
	"oneway-quote/internal/errors"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath()
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.TypeConfig, "%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().Save(path); err != nil {
				return errors.Wrapf(errors.TypeConfig, err, "write %s", path)
			}
			ui.NewWriter(cmd.ErrOrStderr(), config.Get().Output.NoColor).Success("Konfigurasi ditulis ke %s", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(config.Get(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}

func (a *app) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	return config.DefaultPath()
}
