// Package primitives - Tiered pricing primitives
// Volume tiers: the whole quantity is billed at the rate of one tier.
package primitives

import "github.com/shopspring/decimal"

// ResolveTierRate returns the unit rate for count.
//
// Tiers must be ordered by descending Min. The first tier whose Min <= count
// wins; if none qualifies the last tier in the list is used, so a table
// without a Min 0 entry still prices small counts at its lowest declared
// tier. An empty table is a configuration bug and panics.
func ResolveTierRate(count int, tiers []PricingTier) decimal.Decimal {
	if len(tiers) == 0 {
		panic("primitives: ResolveTierRate called with empty tier table")
	}

	for _, tier := range tiers {
		if count >= tier.Min {
			return tier.Rate
		}
	}
	return tiers[len(tiers)-1].Rate
}

// TieredLine resolves the rate for count and returns (rate, count*rate)
func TieredLine(count int, tiers []PricingTier) (rate, total decimal.Decimal) {
	rate = ResolveTierRate(count, tiers)
	return rate, rate.Mul(decimal.NewFromInt(int64(count)))
}

// FlatLine returns count*rate for a flat-priced service
func FlatLine(count int, rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(count)))
}
