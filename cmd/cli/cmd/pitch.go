// Package cmd - pitch command
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"oneway-quote/adapters/advisor"
	"oneway-quote/core/ui"
	"oneway-quote/internal/config"
	"oneway-quote/internal/errors"
)

func newPitchCmd(a *app) *cobra.Command {
	var flags quoteFlags

	cmd := &cobra.Command{
		Use:   "pitch",
		Short: "Generate sales talking points for a quote",
		Long: `Ask the configured generative model for three persuasive points that
present the quote as a good investment. Only summary numbers are sent.

The API key is read from the environment variable named by
advisor.api_key_env in the config (API_KEY by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.document(cmd, &flags)
			if err != nil {
				return err
			}

			adv, err := a.advisor()
			if err != nil {
				return err
			}

			timeout := time.Duration(config.Get().Advisor.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			spinner := ui.NewWriter(cmd.ErrOrStderr(), config.Get().Output.NoColor).NewSpinner("Menganalisis...")
			spinner.Start()
			text, err := advisor.PitchOrFallback(ctx, adv, advisor.SummaryFrom(doc))
			spinner.Stop(err == nil && text != advisor.FallbackMessage)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	addQuoteFlags(cmd, &flags)
	return cmd
}

func (a *app) advisor() (advisor.Advisor, error) {
	c := config.Get().Advisor
	key := os.Getenv(c.APIKeyEnv)
	if key == "" {
		return nil, errors.Newf(errors.TypeConfig, "set %s to use the pitch generator", c.APIKeyEnv)
	}
	return advisor.NewGeminiClient(advisor.Config{
		Endpoint:   c.Endpoint,
		Model:      c.Model,
		APIKey:     key,
		Timeout:    time.Duration(c.TimeoutSeconds) * time.Second,
		RetryCount: 1,
		RetryDelay: time.Second,
	}, a.money), nil
}
