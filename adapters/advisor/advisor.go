// Package advisor asks a generative model for sales talking points about a
// finished quote. Only summary numbers leave the process.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"oneway-quote/core/output"
	"oneway-quote/core/types"
	"oneway-quote/internal/errors"
	"oneway-quote/internal/logging"
)

// FallbackMessage is shown when no pitch could be generated
const FallbackMessage = "Gagal memuat strategi pitching. Silakan coba lagi."

// Advisor generates a pitch for a quote summary
type Advisor interface {
	Pitch(ctx context.Context, summary Summary) (string, error)
}

// Summary is the part of a quote sent to the model
type Summary struct {
	Business   string
	Client     string
	GrandTotal decimal.Decimal
	Quantities types.ServiceQuantities
	Logo       types.LogoSelection
	FeeLabels  []string
}

// SummaryFrom extracts the summary of a priced document
func SummaryFrom(doc *output.Document) Summary {
	b := doc.Breakdown
	labels := make([]string, 0, len(b.ExtraFees))
	for _, fee := range b.ExtraFees {
		labels = append(labels, fee.Label)
	}
	return Summary{
		Business:   doc.Business,
		Client:     doc.Client,
		GrandTotal: b.GrandTotal,
		Quantities: types.ServiceQuantities{
			Uploads: b.Upload.Count,
			Photos:  b.Photo.Count,
			Banners: b.Banner.Count,
			Videos:  b.Video.Count,
		},
		Logo:      b.Logo.Selection,
		FeeLabels: labels,
	}
}

// Prompt builds the Indonesian instruction sent to the model
func Prompt(s Summary, money *output.Money) string {
	q := s.Quantities
	var b strings.Builder
	fmt.Fprintf(&b, "Saya agensi %q sedang melayani klien %q. Total: %s.\n", s.Business, s.Client, money.Format(s.GrandTotal))
	fmt.Fprintf(&b, "Jasa: Upload %d, Desain %d, Banner %d, Video %d, Logo %s.\n", q.Uploads, q.Photos, q.Banners, q.Videos, s.Logo)
	fmt.Fprintf(&b, "Extra: %s.\n", strings.Join(s.FeeLabels, ", "))
	fmt.Fprintf(&b, "Berikan 3 poin pitching profesional yang meyakinkan klien bahwa biaya ini adalah investasi tepat bersama %s. Bahasa Indonesia akrab & profesional.", s.Business)
	return b.String()
}

// Validate rejects summaries with nothing to pitch
func (s Summary) Validate() error {
	if !s.GrandTotal.IsPositive() {
		return errors.Input("nothing to pitch: grand total is zero")
	}
	return nil
}

// PitchOrFallback returns the pitch, or FallbackMessage when a does not
// produce one. Input errors are returned as-is so the caller can tell the
// user what to fix; every other failure is logged and replaced.
func PitchOrFallback(ctx context.Context, a Advisor, s Summary) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	text, err := a.Pitch(ctx, s)
	if err != nil {
		logging.Named("advisor").Warn("pitch generation failed", zap.Error(err))
		return FallbackMessage, nil
	}
	return text, nil
}
