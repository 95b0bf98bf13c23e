// Package types defines the quote domain model shared by the engine,
// the session and the presenters.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceQuantities holds the counts for the four catalog services
type ServiceQuantities struct {
	Uploads int `json:"uploads"`
	Photos  int `json:"photos"`
	Banners int `json:"banners"`
	Videos  int `json:"videos"`
}

// Clamp returns a copy with negative counts replaced by zero
func (q ServiceQuantities) Clamp() ServiceQuantities {
	return ServiceQuantities{
		Uploads: ClampCount(q.Uploads),
		Photos:  ClampCount(q.Photos),
		Banners: ClampCount(q.Banners),
		Videos:  ClampCount(q.Videos),
	}
}

// ClampCount floors a count at zero
func ClampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// ClampAmount floors a decimal at zero
func ClampAmount(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// LogoSelection is the logo branding option
type LogoSelection int

const (
	LogoNone LogoSelection = iota
	LogoClientConcept
	LogoFullConcept
)

// LogoSelections lists every option in display order
var LogoSelections = []LogoSelection{LogoNone, LogoClientConcept, LogoFullConcept}

// String returns the flag/file spelling
func (l LogoSelection) String() string {
	switch l {
	case LogoNone:
		return "none"
	case LogoClientConcept:
		return "client"
	case LogoFullConcept:
		return "full"
	default:
		return fmt.Sprintf("logo(%d)", int(l))
	}
}

// ParseLogoSelection accepts none, client or full (case-insensitive, empty = none)
func ParseLogoSelection(s string) (LogoSelection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LogoNone, nil
	case "client":
		return LogoClientConcept, nil
	case "full":
		return LogoFullConcept, nil
	}
	return LogoNone, fmt.Errorf("unknown logo option %q (want none, client or full)", s)
}

// ExtraFee is an ad hoc line item entered by the user
type ExtraFee struct {
	ID     string          `json:"id"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// DiscountKind selects how the discount value is interpreted
type DiscountKind int

const (
	DiscountNone DiscountKind = iota
	DiscountNominal
	DiscountPercent
)

// DiscountKinds lists every kind in display order
var DiscountKinds = []DiscountKind{DiscountNone, DiscountNominal, DiscountPercent}

// String returns the flag/file spelling
func (k DiscountKind) String() string {
	switch k {
	case DiscountNone:
		return "none"
	case DiscountNominal:
		return "nominal"
	case DiscountPercent:
		return "percent"
	default:
		return fmt.Sprintf("discount(%d)", int(k))
	}
}

// ParseDiscountKind accepts none, nominal or percent (case-insensitive, empty = none)
func ParseDiscountKind(s string) (DiscountKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DiscountNone, nil
	case "nominal":
		return DiscountNominal, nil
	case "percent":
		return DiscountPercent, nil
	}
	return DiscountNone, fmt.Errorf("unknown discount type %q (want none, nominal or percent)", s)
}

// DiscountConfig is the discount mode plus its value.
// Value is an absolute amount for Nominal and a percentage for Percent.
type DiscountConfig struct {
	Kind  DiscountKind    `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// NoDiscount is the zero discount
func NoDiscount() DiscountConfig {
	return DiscountConfig{Kind: DiscountNone, Value: decimal.Zero}
}

// Nominal returns a fixed-amount discount
func Nominal(amount decimal.Decimal) DiscountConfig {
	return DiscountConfig{Kind: DiscountNominal, Value: amount}
}

// Percent returns a percentage discount
func Percent(pct decimal.Decimal) DiscountConfig {
	return DiscountConfig{Kind: DiscountPercent, Value: pct}
}

// ServiceState is everything the engine needs except the discount
type ServiceState struct {
	Quantities ServiceQuantities `json:"quantities"`
	Logo       LogoSelection     `json:"logo"`
	ExtraFees  []ExtraFee        `json:"extra_fees"`
}
