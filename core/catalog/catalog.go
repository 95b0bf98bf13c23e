// Package catalog - Authoritative service price list
// Defines the agency's services, their tier tables, flat prices and logo options.
// This is the source of truth for every rate the engine applies.
package catalog

import (
	"github.com/shopspring/decimal"

	"oneway-quote/core/pricing/primitives"
	"oneway-quote/core/types"
)

// ServiceID identifies a catalog service
type ServiceID string

const (
	ServiceUpload ServiceID = "upload"
	ServicePhoto  ServiceID = "photo"
	ServiceBanner ServiceID = "banner"
	ServiceVideo  ServiceID = "video"
)

// PricingModel classifies how a service is priced
type PricingModel int

const (
	// Tiered - unit rate depends on volume
	Tiered PricingModel = iota
	// Flat - one unit rate regardless of volume
	Flat
)

// String returns string representation
func (m PricingModel) String() string {
	switch m {
	case Tiered:
		return "tiered"
	case Flat:
		return "flat"
	default:
		return "unknown"
	}
}

// ServiceEntry is a catalog entry for a service
type ServiceEntry struct {
	ID       ServiceID
	Label    string
	Model    PricingModel
	Tiers    []primitives.PricingTier
	FlatRate decimal.Decimal
}

// LogoEntry prices one logo option
type LogoEntry struct {
	Selection types.LogoSelection
	// Label is the breakdown/invoice label
	Label string
	// Option is the short name shown when choosing
	Option string
	Price  decimal.Decimal
}

// Catalog is the service price list
type Catalog struct {
	services map[ServiceID]*ServiceEntry
	order    []ServiceID
	logos    map[types.LogoSelection]LogoEntry
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		services: make(map[ServiceID]*ServiceEntry),
		logos:    make(map[types.LogoSelection]LogoEntry),
	}
}

// Register adds or replaces a service, keeping first-registration order
func (c *Catalog) Register(entry ServiceEntry) {
	if _, exists := c.services[entry.ID]; !exists {
		c.order = append(c.order, entry.ID)
	}
	c.services[entry.ID] = &entry
}

// RegisterLogo adds or replaces a logo option
func (c *Catalog) RegisterLogo(entry LogoEntry) {
	c.logos[entry.Selection] = entry
}

// Service returns a service entry
func (c *Catalog) Service(id ServiceID) (*ServiceEntry, bool) {
	entry, ok := c.services[id]
	return entry, ok
}

// MustService returns a service entry or panics; the engine only asks for
// services that Default registers.
func (c *Catalog) MustService(id ServiceID) *ServiceEntry {
	entry, ok := c.services[id]
	if !ok {
		panic("catalog: service not registered: " + string(id))
	}
	return entry
}

// Services returns all services in registration order
func (c *Catalog) Services() []*ServiceEntry {
	result := make([]*ServiceEntry, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.services[id])
	}
	return result
}

// Logo returns the entry for a logo option
func (c *Catalog) Logo(sel types.LogoSelection) (LogoEntry, bool) {
	entry, ok := c.logos[sel]
	return entry, ok
}

// Default returns the agency's current price list
func Default() *Catalog {
	c := NewCatalog()

	c.Register(ServiceEntry{
		ID:    ServiceUpload,
		Label: "Upload Produk",
		Model: Tiered,
		Tiers: []primitives.PricingTier{
			primitives.Tier(101, 2500),
			primitives.Tier(76, 3500),
			primitives.Tier(51, 4000),
			primitives.Tier(31, 4500),
			primitives.Tier(0, 5000),
		},
	})

	// No Min 0 tier: counts below 31 are priced at the 31+ rate.
	c.Register(ServiceEntry{
		ID:    ServicePhoto,
		Label: "Desain Foto",
		Model: Tiered,
		Tiers: []primitives.PricingTier{
			primitives.Tier(101, 7500),
			primitives.Tier(76, 8500),
			primitives.Tier(51, 9000),
			primitives.Tier(31, 10000),
		},
	})

	c.Register(ServiceEntry{
		ID:       ServiceBanner,
		Label:    "Banner Toko",
		Model:    Flat,
		FlatRate: decimal.NewFromInt(30000),
	})

	c.Register(ServiceEntry{
		ID:       ServiceVideo,
		Label:    "Video Produk",
		Model:    Flat,
		FlatRate: decimal.NewFromInt(10000),
	})

	c.RegisterLogo(LogoEntry{
		Selection: types.LogoNone,
		Label:     "Tanpa Logo",
		Option:    "Lewati",
		Price:     decimal.Zero,
	})
	c.RegisterLogo(LogoEntry{
		Selection: types.LogoClientConcept,
		Label:     "Logo (Konsep Klien)",
		Option:    "Konsep Klien",
		Price:     decimal.NewFromInt(150000),
	})
	c.RegisterLogo(LogoEntry{
		Selection: types.LogoFullConcept,
		Label:     "Logo + Konsep (Pro)",
		Option:    "Konsep Baru",
		Price:     decimal.NewFromInt(200000),
	})

	return c
}
