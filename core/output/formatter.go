// Package output provides output formatting interfaces.
// This package turns a priced quote into human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"oneway-quote/core/catalog"
	"oneway-quote/core/cost"
	"oneway-quote/core/quote"
	"oneway-quote/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a boxed terminal preview
	FormatCLI Format = "cli"

	// FormatText is the shareable invoice message
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given document
	Render(w io.Writer, doc *Document) error
}

// LineKind distinguishes breakdown lines
type LineKind int

const (
	LineService LineKind = iota
	LineLogo
	LineFee
)

// Line is one present item of the order, in display order
type Line struct {
	Kind   LineKind
	Label  string
	Count  int
	Rate   decimal.Decimal
	Total  decimal.Decimal
	Tiered bool
	// Detail is the logo option label
	Detail string
}

// Document is everything a presenter needs for one quote
type Document struct {
	Business  string
	Client    string
	Shop      string
	Date      time.Time
	Breakdown types.QuoteBreakdown

	lines   []Line
	preview []Line
	hasLogo bool
}

// NewDocument prices the session and collects its lines
func NewDocument(business string, s *quote.Session, engine *cost.Engine, date time.Time) *Document {
	b := s.Breakdown(engine)
	doc := &Document{
		Business:  business,
		Client:    s.Client(),
		Shop:      s.Shop(),
		Date:      date,
		Breakdown: b,
		hasLogo:   b.Logo.Selection != types.LogoNone,
	}

	cat := engine.Catalog()
	services := []struct {
		id   catalog.ServiceID
		line types.ServiceLine
	}{
		{catalog.ServiceUpload, b.Upload},
		{catalog.ServicePhoto, b.Photo},
		{catalog.ServiceBanner, b.Banner},
		{catalog.ServiceVideo, b.Video},
	}

	for _, svc := range services {
		entry := cat.MustService(svc.id)
		line := Line{
			Kind:   LineService,
			Label:  entry.Label,
			Count:  svc.line.Count,
			Rate:   svc.line.Rate,
			Total:  svc.line.Total,
			Tiered: entry.Model == catalog.Tiered,
		}
		if line.Count > 0 {
			doc.lines = append(doc.lines, line)
		}
		// The preview keeps tiered services visible at zero so the current
		// unit rate is always on screen.
		if line.Count > 0 || line.Tiered {
			doc.preview = append(doc.preview, line)
		}
	}

	if doc.hasLogo {
		logo := Line{Kind: LineLogo, Label: "Branding Logo", Total: b.Logo.Total, Detail: b.Logo.Label}
		doc.lines = append(doc.lines, logo)
		doc.preview = append(doc.preview, logo)
	}

	for _, fee := range b.ExtraFees {
		line := Line{Kind: LineFee, Label: fee.Label, Total: fee.Amount}
		doc.lines = append(doc.lines, line)
		doc.preview = append(doc.preview, line)
	}

	return doc
}

// Lines returns the invoice lines: services with a non-zero count, the logo
// when one was chosen, then every extra fee in entry order.
func (d *Document) Lines() []Line {
	return d.lines
}

// PreviewLines is Lines plus zero-count tiered services
func (d *Document) PreviewLines() []Line {
	return d.preview
}

// HasLogo reports whether a logo option other than none was chosen
func (d *Document) HasLogo() bool {
	return d.hasLogo
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry returns a registry with the text, cli and json formatters
func NewRegistry(money *Money, noColor bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(NewTextFormatter(money))
	r.Register(NewCLIFormatter(money, noColor))
	r.Register(NewJSONFormatter())
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %s)", format, strings.Join(r.names(), ", "))
	}
	return f, nil
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.formatters))
	for f := range r.formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}
