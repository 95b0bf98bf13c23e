package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"oneway-quote/adapters/share"
	"oneway-quote/internal/config"
	"oneway-quote/internal/errors"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.json")

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestQuoteText(t *testing.T) {
	out, _, err := run(t, "quote", "--format", "text",
		"--client", "Andi", "--upload", "40", "--banner", "2", "--video", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "👤 Klien: Andi")
	assert.Contains(t, out, "• Upload Produk (40x): Rp 180.000")
	assert.Contains(t, out, "*TOTAL BAYAR: Rp 250.000*")
}

func TestQuoteJSONWithFeesAndDiscount(t *testing.T) {
	out, _, err := run(t, "quote", "--format", "json",
		"--upload", "101", "--logo", "full",
		"--fee", "Express=50000", "--fee", "Biaya a=b=2500",
		"--discount-type", "percent", "--discount", "10")
	require.NoError(t, err)

	var decoded struct {
		Breakdown struct {
			ExtraFees []struct {
				Label string `json:"label"`
			} `json:"extra_fees"`
			Subtotal   string `json:"subtotal"`
			Discount   string `json:"discount"`
			GrandTotal string `json:"grand_total"`
		} `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	// 252500 + 200000 + 50000 + 2500
	assert.Equal(t, "505000", decoded.Breakdown.Subtotal)
	assert.Equal(t, "50500", decoded.Breakdown.Discount)
	assert.Equal(t, "454500", decoded.Breakdown.GrandTotal)
	require.Len(t, decoded.Breakdown.ExtraFees, 2)
	assert.Equal(t, "Biaya a=b", decoded.Breakdown.ExtraFees[1].Label)
}

func TestQuoteFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "andi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("client: Andi\nuploads: 40\nbanners: 2\n"), 0o600))

	out, _, err := run(t, "quote", "--format", "text", "--file", path, "--upload", "10", "--client", "Budi")
	require.NoError(t, err)
	assert.Contains(t, out, "👤 Klien: Budi")
	assert.Contains(t, out, "• Upload Produk (10x): Rp 50.000")
	assert.Contains(t, out, "• Banner Toko (2x): Rp 60.000")
}

func TestQuoteErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want errors.Type
	}{
		{"bad logo", []string{"quote", "--logo", "gold"}, errors.TypeInput},
		{"fee without amount", []string{"quote", "--fee", "Express"}, errors.TypeInput},
		{"negative fee", []string{"quote", "--fee", "Express=-1"}, errors.TypeInput},
		{"discount without type", []string{"quote", "--discount", "5"}, errors.TypeInput},
		{"unsupported file", []string{"quote", "--file", "quote.toml"}, errors.TypeNotSupported},
		{"nothing to export", []string{"export"}, errors.TypeInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.want), err.Error())
		})
	}

	_, _, err := run(t, "quote", "--format", "html")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestInvoiceWhatsApp(t *testing.T) {
	out, _, err := run(t, "invoice", "--whatsapp", "--upload", "40")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, share.WhatsAppBase+"*RINCIAN%20PENAWARAN%20JASA*%0A"))
}

func TestInvoiceCopy(t *testing.T) {
	t.Setenv("TMUX", "")
	out, errOut, err := run(t, "invoice", "--copy", "--video", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "• Video Produk (1x): Rp 10.000")
	assert.Contains(t, errOut, "\x1b]52;c;")
	assert.Contains(t, errOut, "Invoice disalin ke clipboard")
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "invoice.png")
	xlsx := filepath.Join(dir, "invoice.xlsx")

	_, errOut, err := run(t, "export", "--upload", "40", "--png", png, "--xlsx", xlsx)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Tersimpan: "+png)

	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	xl, err := excelize.OpenFile(xlsx, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	defer func() { _ = xl.Close() }()
	total, err := xl.GetCellValue("Rincian", "D5")
	require.NoError(t, err)
	assert.Equal(t, "180000", total)
}

func TestTiers(t *testing.T) {
	out, _, err := run(t, "tiers")
	require.NoError(t, err)
	for _, want := range []string{"Upload Produk", "≥ 101", "Rp 2.500", "Desain Foto", "Tarif/unit: Rp 30.000", "Konsep Baru", "Rp 200.000"} {
		assert.Contains(t, out, want)
	}
}

func TestPitchNeedsKey(t *testing.T) {
	t.Setenv("API_KEY", "")
	_, _, err := run(t, "pitch", "--upload", "40")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, root.Execute())
	_, err := os.Stat(path)
	require.NoError(t, err)

	root = newRootCmd()
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "config", "init"})
	assert.Error(t, root.Execute(), "refuses to overwrite without --force")

	var out bytes.Buffer
	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "show"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"name": "OneWay media"`)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "oneway-quote version "+Version+"\n", out)
}

func TestConfigFileDrivesOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"business": {"name": "Studio Maju"}}`), 0o600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "invoice", "--video", "1"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "*by Studio Maju*")
	assert.Contains(t, out.String(), "*Ketentuan Layanan Studio Maju:*")
	assert.Equal(t, "Studio Maju", config.Get().Business.Name)
}

func TestExportFailure(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "invoice.png")
	_, _, err := run(t, "export", "--upload", "1", "--png", bad)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeExport), err.Error())
}
