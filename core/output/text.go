package output

import (
	"fmt"
	"io"
	"strings"
)

const rule = "──────────────────"

// TextFormatter renders the chat-ready invoice message
type TextFormatter struct {
	money *Money
}

// NewTextFormatter creates a text formatter
func NewTextFormatter(money *Money) *TextFormatter {
	return &TextFormatter{money: money}
}

// Format returns FormatText
func (f *TextFormatter) Format() Format {
	return FormatText
}

// Render writes the invoice message
func (f *TextFormatter) Render(w io.Writer, doc *Document) error {
	_, err := io.WriteString(w, f.Invoice(doc))
	return err
}

// Invoice returns the invoice message. Service lines appear only with a
// non-zero count, the logo line only when a logo was chosen.
func (f *TextFormatter) Invoice(doc *Document) string {
	var items strings.Builder
	for _, line := range doc.Lines() {
		switch line.Kind {
		case LineService:
			fmt.Fprintf(&items, "• %s (%dx): %s\n", line.Label, line.Count, f.money.Format(line.Total))
		default:
			fmt.Fprintf(&items, "• %s: %s\n", line.Label, f.money.Format(line.Total))
		}
	}
	list := strings.TrimSpace(items.String())
	if list == "" {
		list = "• (Belum ada layanan dipilih)"
	}

	b := doc.Breakdown
	var sb strings.Builder
	sb.WriteString("*RINCIAN PENAWARAN JASA*\n")
	fmt.Fprintf(&sb, "*by %s*\n", doc.Business)
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "📅 Tgl: %s\n", FormatDate(doc.Date))
	fmt.Fprintf(&sb, "👤 Klien: %s\n", orDash(doc.Client))
	fmt.Fprintf(&sb, "🏪 Toko: %s\n", orDash(doc.Shop))
	sb.WriteString("\n*Daftar Pesanan:*\n")
	sb.WriteString(list + "\n\n")
	fmt.Fprintf(&sb, "💰 Subtotal: %s\n", f.money.Format(b.Subtotal))
	fmt.Fprintf(&sb, "📉 Diskon: -%s\n", f.money.Format(b.Discount))
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "*TOTAL BAYAR: %s*\n", f.money.Format(b.GrandTotal))
	sb.WriteString(rule + "\n\n")
	fmt.Fprintf(&sb, "*Ketentuan Layanan %s:*\n", doc.Business)
	sb.WriteString("• Sistem bayar: Setelah toko jadi/selesai.\n")
	sb.WriteString("• Revisi: Berlaku untuk revisi minor saja.\n")
	sb.WriteString("• Estimasi: Segera setelah konfirmasi.\n\n")
	sb.WriteString("Apakah rincian dan nominal di atas sudah sesuai? Jika ya, akan segera kami eksekusi. Mohon konfirmasinya ya!")
	return sb.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
