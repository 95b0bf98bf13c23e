// Package catalog - Catalog validation
// Ensures the price list satisfies the invariants the engine relies on.
package catalog

import (
	"fmt"
	"strings"

	"oneway-quote/core/types"
	"oneway-quote/internal/errors"
)

// ValidationRule is a service validation rule
type ValidationRule func(*ServiceEntry) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateTierTable,
		validateFlatRate,
	}
}

// Validate checks every service against the rules and every logo option
// for presence and a non-negative price.
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errs []error

	for _, entry := range c.Services() {
		for _, rule := range rules {
			if err := rule(entry); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", entry.ID, err))
			}
		}
	}

	for _, sel := range types.LogoSelections {
		logo, ok := c.logos[sel]
		if !ok {
			errs = append(errs, fmt.Errorf("logo %s: not registered", sel))
			continue
		}
		if logo.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("logo %s: negative price %s", sel, logo.Price))
		}
	}

	return errs
}

// validateTierTable checks tiered services: non-empty, Min >= 0,
// strictly descending Min, positive rates
func validateTierTable(e *ServiceEntry) error {
	if e.Model != Tiered {
		return nil
	}
	if len(e.Tiers) == 0 {
		return fmt.Errorf("tiered service has no tiers")
	}
	for i, tier := range e.Tiers {
		if tier.Min < 0 {
			return fmt.Errorf("tier %d has negative min %d", i, tier.Min)
		}
		if !tier.Rate.IsPositive() {
			return fmt.Errorf("tier %d has non-positive rate %s", i, tier.Rate)
		}
		if i > 0 && tier.Min >= e.Tiers[i-1].Min {
			return fmt.Errorf("tier %d min %d is not below previous min %d", i, tier.Min, e.Tiers[i-1].Min)
		}
	}
	return nil
}

// validateFlatRate ensures flat services carry a positive rate
func validateFlatRate(e *ServiceEntry) error {
	if e.Model == Flat && !e.FlatRate.IsPositive() {
		return fmt.Errorf("flat service has non-positive rate %s", e.FlatRate)
	}
	return nil
}

// Check runs the default rules and folds failures into one config error
func (c *Catalog) Check() error {
	errs := c.Validate(DefaultValidationRules())
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return errors.Newf(errors.TypeConfig, "catalog has %d validation errors: %s", len(errs), strings.Join(msgs, "; "))
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	if err := c.Check(); err != nil {
		panic(err.Error())
	}
}
