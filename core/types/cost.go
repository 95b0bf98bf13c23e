// Package types - Quote breakdown types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyIDR Currency = "IDR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// ServiceLine is one priced catalog service
type ServiceLine struct {
	// Count is the ordered quantity
	Count int `json:"count"`

	// Rate is the unit price applied to Count
	Rate decimal.Decimal `json:"rate"`

	// Total is Count * Rate
	Total decimal.Decimal `json:"total"`
}

// LogoLine is the priced logo option
type LogoLine struct {
	Selection LogoSelection   `json:"-"`
	Label     string          `json:"type"`
	Total     decimal.Decimal `json:"total"`
}

// QuoteBreakdown is the fully itemized quote. It is a snapshot: the engine
// builds a new one on every call and nothing mutates it afterwards.
type QuoteBreakdown struct {
	Upload ServiceLine `json:"upload"`
	Photo  ServiceLine `json:"photo"`
	Banner ServiceLine `json:"banner"`
	Video  ServiceLine `json:"video"`
	Logo   LogoLine    `json:"logo"`

	// ExtraFees is a copy of the fee list in display order
	ExtraFees []ExtraFee `json:"extra_fees"`

	ExtraFeesTotal decimal.Decimal `json:"extra_fees_total"`
	Subtotal       decimal.Decimal `json:"subtotal"`

	// Discount is the resolved amount, not clamped to Subtotal
	Discount decimal.Decimal `json:"discount"`

	// GrandTotal is Subtotal - Discount floored at zero
	GrandTotal decimal.Decimal `json:"grand_total"`

	Currency Currency `json:"currency"`
}

// IsEmpty reports whether nothing billable was selected
func (b *QuoteBreakdown) IsEmpty() bool {
	return b.Subtotal.IsZero()
}
