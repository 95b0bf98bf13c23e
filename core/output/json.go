package output

import (
	"encoding/json"
	"io"

	"oneway-quote/core/types"
)

// JSONFormatter renders the breakdown as JSON; amounts are decimal strings
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

type jsonDocument struct {
	Business  string               `json:"business"`
	Client    string               `json:"client,omitempty"`
	Shop      string               `json:"shop,omitempty"`
	Date      string               `json:"date"`
	Breakdown types.QuoteBreakdown `json:"breakdown"`
}

// Render writes the indented document
func (f *JSONFormatter) Render(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonDocument{
		Business:  doc.Business,
		Client:    doc.Client,
		Shop:      doc.Shop,
		Date:      doc.Date.Format("2006-01-02"),
		Breakdown: doc.Breakdown,
	})
}
