package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const previewWidth = 44

// CLIFormatter renders a boxed breakdown for the terminal
type CLIFormatter struct {
	money *Money

	box    lipgloss.Style
	title  lipgloss.Style
	dim    lipgloss.Style
	total  lipgloss.Style
	danger lipgloss.Style
}

// NewCLIFormatter creates a terminal formatter
func NewCLIFormatter(money *Money, noColor bool) *CLIFormatter {
	f := &CLIFormatter{
		money:  money,
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		title:  lipgloss.NewStyle().Bold(true),
		dim:    lipgloss.NewStyle(),
		total:  lipgloss.NewStyle().Bold(true),
		danger: lipgloss.NewStyle(),
	}
	if !noColor {
		f.box = f.box.BorderForeground(lipgloss.Color("57"))
		f.title = f.title.Foreground(lipgloss.Color("57"))
		f.dim = f.dim.Foreground(lipgloss.Color("245"))
		f.total = f.total.Foreground(lipgloss.Color("12"))
		f.danger = f.danger.Foreground(lipgloss.Color("9"))
	}
	return f
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the preview box followed by a newline
func (f *CLIFormatter) Render(w io.Writer, doc *Document) error {
	_, err := fmt.Fprintln(w, f.Preview(doc))
	return err
}

// Preview returns the boxed breakdown
func (f *CLIFormatter) Preview(doc *Document) string {
	b := doc.Breakdown
	var rows []string

	rows = append(rows, f.title.Render("TINJAUAN INVOICE"))
	if doc.Client != "" || doc.Shop != "" {
		rows = append(rows, f.dim.Render(strings.TrimSpace(orDash(doc.Client)+" · "+orDash(doc.Shop))))
	}
	rows = append(rows, "")

	for _, line := range doc.PreviewLines() {
		rows = append(rows, row(line.Label, f.money.Format(line.Total)))
		switch {
		case line.Kind == LineService && line.Count > 0 && line.Tiered:
			rows = append(rows, f.dim.Render(fmt.Sprintf("  %d UNIT × %s", line.Count, f.money.Format(line.Rate))))
		case line.Kind == LineService && line.Count > 0:
			rows = append(rows, f.dim.Render(fmt.Sprintf("  %d UNIT", line.Count)))
		case line.Kind == LineLogo:
			rows = append(rows, f.dim.Render("  "+line.Detail))
		}
	}

	if !b.Subtotal.IsZero() {
		rows = append(rows, "", row("Subtotal", f.money.Format(b.Subtotal)))
		if b.Discount.IsPositive() {
			rows = append(rows, f.danger.Render(row("DISKON", "- "+f.money.Format(b.Discount))))
		}
	}

	if b.GrandTotal.IsZero() {
		rows = append(rows, "", f.dim.Render(center("KOSONG")))
	}
	rows = append(rows, "", f.total.Render(row("TOTAL", f.money.Format(b.GrandTotal))))

	return f.box.Render(strings.Join(rows, "\n"))
}

func row(label, value string) string {
	gap := previewWidth - lipgloss.Width(label) - lipgloss.Width(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value
}

func center(s string) string {
	pad := (previewWidth - lipgloss.Width(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
