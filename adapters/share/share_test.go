package share

import (
	"bytes"
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"space", "a b", WhatsAppBase + "a%20b"},
		{"newline and star", "*TOTAL*\nRp 1.000", WhatsAppBase + "*TOTAL*%0ARp%201.000"},
		{"reserved", "a&b=c?", WhatsAppBase + "a%26b%3Dc%3F"},
		{"unreserved marks", "(ok)!'", WhatsAppBase + "(ok)!'"},
		{"emoji", "📅", WhatsAppBase + "%F0%9F%93%85"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WhatsAppLink(tt.in))
		})
	}
}

func TestWhatsAppLinkRoundTrip(t *testing.T) {
	text := "*RINCIAN PENAWARAN JASA*\n• Upload Produk (40x): Rp 180.000"
	link := WhatsAppLink(text)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, text, u.Query().Get("text"))
	assert.NotContains(t, link, "+")
}

func TestCopyToClipboard(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	var buf bytes.Buffer
	require.NoError(t, CopyToClipboard(&buf, "halo"))

	out := buf.String()
	assert.Contains(t, out, "\x1b]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("halo")))
}
