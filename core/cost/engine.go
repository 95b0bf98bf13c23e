// Package cost provides the quote pricing engine.
// This package transforms service counts, extra fees and a discount into
// an itemized QuoteBreakdown.
package cost

import (
	"fmt"

	"github.com/shopspring/decimal"

	"oneway-quote/core/catalog"
	"oneway-quote/core/pricing/primitives"
	"oneway-quote/core/types"
)

var hundred = decimal.NewFromInt(100)

// Engine prices quotes against a catalog. It holds no mutable state, so one
// Engine may be shared freely.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an engine over cat; nil means catalog.Default()
func NewEngine(cat *catalog.Catalog) *Engine {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Engine{catalog: cat}
}

// Catalog returns the engine's price list
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// ComputeBreakdown prices state with the given discount.
//
// Counts and discount values are expected to be clamped by the caller; the
// engine does not validate them. The result is freshly allocated and shares
// no memory with state.
func (e *Engine) ComputeBreakdown(state types.ServiceState, discount types.DiscountConfig) types.QuoteBreakdown {
	q := state.Quantities

	upload := e.serviceLine(catalog.ServiceUpload, q.Uploads)
	photo := e.serviceLine(catalog.ServicePhoto, q.Photos)
	banner := e.serviceLine(catalog.ServiceBanner, q.Banners)
	video := e.serviceLine(catalog.ServiceVideo, q.Videos)
	logo := e.logoLine(state.Logo)

	fees := make([]types.ExtraFee, len(state.ExtraFees))
	copy(fees, state.ExtraFees)
	feesTotal := decimal.Zero
	for _, fee := range fees {
		feesTotal = feesTotal.Add(fee.Amount)
	}

	subtotal := decimal.Sum(upload.Total, photo.Total, banner.Total, video.Total, logo.Total, feesTotal)
	discountAmount := ResolveDiscount(subtotal, discount)

	return types.QuoteBreakdown{
		Upload:         upload,
		Photo:          photo,
		Banner:         banner,
		Video:          video,
		Logo:           logo,
		ExtraFees:      fees,
		ExtraFeesTotal: feesTotal,
		Subtotal:       subtotal,
		Discount:       discountAmount,
		GrandTotal:     GrandTotal(subtotal, discountAmount),
		Currency:       types.CurrencyIDR,
	}
}

func (e *Engine) serviceLine(id catalog.ServiceID, count int) types.ServiceLine {
	entry := e.catalog.MustService(id)

	switch entry.Model {
	case catalog.Tiered:
		rate, total := primitives.TieredLine(count, entry.Tiers)
		return types.ServiceLine{Count: count, Rate: rate, Total: total}
	case catalog.Flat:
		return types.ServiceLine{Count: count, Rate: entry.FlatRate, Total: primitives.FlatLine(count, entry.FlatRate)}
	default:
		panic(fmt.Sprintf("cost: service %s has unknown pricing model %d", id, entry.Model))
	}
}

func (e *Engine) logoLine(sel types.LogoSelection) types.LogoLine {
	switch sel {
	case types.LogoNone, types.LogoClientConcept, types.LogoFullConcept:
		entry, ok := e.catalog.Logo(sel)
		if !ok {
			panic(fmt.Sprintf("cost: logo option %s missing from catalog", sel))
		}
		return types.LogoLine{Selection: sel, Label: entry.Label, Total: entry.Price}
	default:
		panic(fmt.Sprintf("cost: unknown logo selection %d", int(sel)))
	}
}

// ResolveDiscount turns a discount config into an amount. Nominal discounts
// are returned as entered, even when they exceed subtotal.
func ResolveDiscount(subtotal decimal.Decimal, d types.DiscountConfig) decimal.Decimal {
	switch d.Kind {
	case types.DiscountNone:
		return decimal.Zero
	case types.DiscountNominal:
		return d.Value
	case types.DiscountPercent:
		return subtotal.Mul(d.Value).Div(hundred)
	default:
		panic(fmt.Sprintf("cost: unknown discount kind %d", int(d.Kind)))
	}
}

// GrandTotal is subtotal - discount, never below zero
func GrandTotal(subtotal, discount decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, subtotal.Sub(discount))
}
