package models

import "time"

// AvailabilityStatus is the canonical live state of a provider.
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "available"
	StatusBusy      AvailabilityStatus = "busy"
)

// ProviderView is the resolved summary shown on every surface.
type ProviderView struct {
	ProviderID    string             `json:"providerId"`
	Prices        PriceMap           `json:"prices"`
	ServiceName   string             `json:"serviceName"`
	PricingSource PricingSource      `json:"pricingSource"`
	Status        AvailabilityStatus `json:"status"`
	Catalog       []CatalogEntry     `json:"catalog"`
	BookedUntil   string             `json:"bookedUntil,omitempty"`
	ResolvedAt    time.Time          `json:"resolvedAt"`
}

// Pricing returns the cacheable part of the view.
func (v ProviderView) Pricing() PricingView {
	return PricingView{
		ProviderID:    v.ProviderID,
		Prices:        v.Prices,
		ServiceName:   v.ServiceName,
		PricingSource: v.PricingSource,
		Catalog:       v.Catalog,
		ResolvedAt:    v.ResolvedAt,
	}
}

// PricingView is what the pricing cache holds. Availability is always read live.
type PricingView struct {
	ProviderID    string         `json:"providerId"`
	Prices        PriceMap       `json:"prices"`
	ServiceName   string         `json:"serviceName"`
	PricingSource PricingSource  `json:"pricingSource"`
	Catalog       []CatalogEntry `json:"catalog"`
	ResolvedAt    time.Time      `json:"resolvedAt"`
}

// StatusView is the live availability of a stored provider.
type StatusView struct {
	ProviderID  string             `json:"providerId"`
	Status      AvailabilityStatus `json:"status"`
	BookedUntil string             `json:"bookedUntil,omitempty"`
}

// BookingIntent is handed to the messaging collaborator as "what the user is booking".
type BookingIntent struct {
	ProviderID      string `json:"providerId,omitempty"`
	ServiceName     string `json:"serviceName"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int64  `json:"price"`
}

// CountdownReading is one tick of the booked-until countdown.
type CountdownReading struct {
	Display  string `json:"display"`
	Overtime bool   `json:"overtime"`
}
