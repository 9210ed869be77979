package pricing

import (
	"errors"
	"fmt"

	"github.com/Philip2024394/website-massage--sub024/models"
)

// ErrNoPriceForDuration is returned when a booking intent is requested for a tier that
// has no displayable price.
var ErrNoPriceForDuration = errors.New("no price available for duration")

// Resolution is the price map and service label shown for a provider.
type Resolution struct {
	Prices      models.PriceMap      `json:"prices"`
	ServiceName string               `json:"serviceName"`
	Source      models.PricingSource `json:"source"`
}

// Resolve applies the pricing precedence chain to a record:
//  1. cheapest authoritative entry of the combined catalogue
//  2. legacy per-duration fields
//  3. legacy encoded pricing blob
//  4. synthetic catalogue, only when the record carries no real pricing at all
//  5. all-zero prices
//
// Each step is used only when it yields all three tiers.
func Resolve(record models.ProviderRecord) Resolution {
	fallbackName := DefaultServiceName(record.Kind)

	catalog := DisplayCatalog(record)
	if entry := Cheapest(authoritativeOnly(catalog)); entry != nil {
		name := entry.Name
		if name == "" {
			name = fallbackName
		}
		return Resolution{Prices: entry.Prices(), ServiceName: name, Source: models.SourceCatalog}
	}

	if legacy := record.LegacyPrices(); legacy.Complete() {
		return Resolution{Prices: legacy, ServiceName: fallbackName, Source: models.SourceLegacyFields}
	}

	if encoded, ok := ParseEncodedPricing(record.EncodedPricing); ok && encoded.Complete() {
		return Resolution{Prices: encoded, ServiceName: fallbackName, Source: models.SourceEncoded}
	}

	if !HasAnyRealPricing(record) {
		if entry := Cheapest(Synthesize(record.ID, record.Kind, record.CatalogSize())); entry != nil {
			return Resolution{Prices: entry.Prices(), ServiceName: entry.Name, Source: models.SourceSynthetic}
		}
	}

	return Resolution{Prices: models.PriceMap{}, ServiceName: fallbackName, Source: models.SourceNone}
}

// HasAnyRealPricing reports whether any stored source carries at least one positive
// price, complete or not.
func HasAnyRealPricing(record models.ProviderRecord) bool {
	for _, e := range record.Catalog {
		if e.Prices().Any() {
			return true
		}
	}
	if record.Override != nil && record.Override.Prices().Any() {
		return true
	}
	if record.LegacyPrices().Any() {
		return true
	}
	_, ok := ParseEncodedPricing(record.EncodedPricing)
	return ok
}

// Intent builds the booking payload for one duration. The messaging side uses it as is
// and never recomputes prices.
func (r Resolution) Intent(durationMinutes int) (models.BookingIntent, error) {
	price, err := r.Prices.For(durationMinutes)
	if err != nil {
		return models.BookingIntent{}, err
	}
	if price <= 0 {
		return models.BookingIntent{}, fmt.Errorf("%w: %d minutes", ErrNoPriceForDuration, durationMinutes)
	}
	return models.BookingIntent{
		ServiceName:     r.ServiceName,
		DurationMinutes: durationMinutes,
		Price:           price,
	}, nil
}
