package models

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDuration is returned for session lengths other than 60, 90 and 120 minutes.
var ErrUnsupportedDuration = errors.New("unsupported duration")

// Durations are the bookable session lengths in minutes, in display order.
var Durations = []int{60, 90, 120}

// CatalogEntry is one named service with a price per duration tier.
type CatalogEntry struct {
	Name      string `json:"name"`
	Price60   int64  `json:"price60"`
	Price90   int64  `json:"price90"`
	Price120  int64  `json:"price120"`
	Synthetic bool   `json:"synthetic,omitempty"` // Display-only placeholder, never authoritative.
}

// Complete reports whether every tier carries a positive price.
func (e CatalogEntry) Complete() bool {
	return e.Price60 > 0 && e.Price90 > 0 && e.Price120 > 0
}

// Total is the selection key used when comparing entries.
func (e CatalogEntry) Total() int64 {
	return e.Price60 + e.Price90 + e.Price120
}

// Prices returns the entry's tiers as a price map.
func (e CatalogEntry) Prices() PriceMap {
	return PriceMap{Min60: e.Price60, Min90: e.Price90, Min120: e.Price120}
}

// PriceMap holds one price per duration; 0 means "contact for price".
type PriceMap struct {
	Min60  int64 `json:"60"`
	Min90  int64 `json:"90"`
	Min120 int64 `json:"120"`
}

// Complete reports whether all three tiers are positive.
func (p PriceMap) Complete() bool {
	return p.Min60 > 0 && p.Min90 > 0 && p.Min120 > 0
}

// Any reports whether at least one tier is positive.
func (p PriceMap) Any() bool {
	return p.Min60 > 0 || p.Min90 > 0 || p.Min120 > 0
}

// For returns the price for a duration in minutes.
func (p PriceMap) For(minutes int) (int64, error) {
	switch minutes {
	case 60:
		return p.Min60, nil
	case 90:
		return p.Min90, nil
	case 120:
		return p.Min120, nil
	}
	return 0, fmt.Errorf("%w: %d minutes", ErrUnsupportedDuration, minutes)
}

// PricingSource names the precedence step that produced a price map.
type PricingSource string

const (
	SourceCatalog      PricingSource = "catalog"
	SourceLegacyFields PricingSource = "legacy_fields"
	SourceEncoded      PricingSource = "encoded"
	SourceSynthetic    PricingSource = "synthetic"
	SourceNone         PricingSource = "none"
)
