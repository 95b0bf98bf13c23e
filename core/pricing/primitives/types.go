// Package primitives - Centralized pricing math
// The catalog declares rates, the engine asks these primitives for line totals.
// All unit-rate selection flows through here.
package primitives

import "github.com/shopspring/decimal"

// PricingTier is a volume tier: it applies when count >= Min
type PricingTier struct {
	Min  int             `json:"min"`
	Rate decimal.Decimal `json:"rate"`
}

// Tier is shorthand for building tier tables
func Tier(min int, rate int64) PricingTier {
	return PricingTier{Min: min, Rate: decimal.NewFromInt(rate)}
}
