// Package share hands a finished invoice to the outside world: a WhatsApp
// deep link and a terminal clipboard copy.
package share

import (
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"go.uber.org/zap"

	"oneway-quote/internal/errors"
	"oneway-quote/internal/logging"
)

// WhatsAppBase is the share endpoint; the message goes in the text parameter
const WhatsAppBase = "https://wa.me/?text="

// WhatsAppLink returns a link that opens WhatsApp with text prefilled.
// Escaping matches encodeURIComponent, so spaces become %20 rather than +.
func WhatsAppLink(text string) string {
	return WhatsAppBase + escapeComponent(text)
}

func escapeComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	// encodeURIComponent leaves these unreserved marks alone
	for _, mark := range []struct{ enc, raw string }{
		{"%21", "!"}, {"%27", "'"}, {"%28", "("}, {"%29", ")"}, {"%2A", "*"},
	} {
		escaped = strings.ReplaceAll(escaped, mark.enc, mark.raw)
	}
	return escaped
}

// CopyToClipboard writes an OSC52 sequence carrying text to w. Terminals
// that support OSC52 place text on the system clipboard; under tmux or
// screen the sequence is wrapped so it reaches the outer terminal.
func CopyToClipboard(w io.Writer, text string) error {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(w); err != nil {
		return errors.Wrap(errors.TypeExport, "copy to clipboard", err)
	}
	logging.Debug("copied invoice to clipboard", zap.Int("bytes", len(text)))
	return nil
}
