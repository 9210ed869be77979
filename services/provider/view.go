package provider

import (
	"time"

	"github.com/Philip2024394/website-massage--sub024/models"
	"github.com/Philip2024394/website-massage--sub024/services/availability"
	"github.com/Philip2024394/website-massage--sub024/services/booking"
	"github.com/Philip2024394/website-massage--sub024/services/pricing"
)

// ResolveView runs every resolver over a record.
func ResolveView(record models.ProviderRecord, now time.Time) models.ProviderView {
	res := pricing.Resolve(record)
	return models.ProviderView{
		ProviderID:    record.ID,
		Prices:        res.Prices,
		ServiceName:   res.ServiceName,
		PricingSource: res.Source,
		Status:        availability.ResolveStatus(record),
		Catalog:       pricing.DisplayCatalog(record),
		BookedUntil:   record.BookedUntil,
		ResolvedAt:    now,
	}
}

// ViewState is everything one open provider view derives from its record. It is
// recomputed only through Refresh.
type ViewState struct {
	Record            models.ProviderRecord
	Pricing           pricing.Resolution
	Status            models.AvailabilityStatus
	Catalog           []models.CatalogEntry
	Countdown         availability.Countdown
	FromSharedProfile bool

	guard *booking.Guard
}

// NewViewState builds the state for a freshly opened view.
func NewViewState(record models.ProviderRecord, fromSharedProfile bool, debounce time.Duration) *ViewState {
	v := &ViewState{
		FromSharedProfile: fromSharedProfile,
		guard:             booking.NewGuard(debounce),
	}
	v.Refresh(record)
	return v
}

// Refresh recomputes every derived field from record. Guard state survives.
func (v *ViewState) Refresh(record models.ProviderRecord) {
	v.Record = record
	v.Pricing = pricing.Resolve(record)
	v.Status = availability.ResolveStatus(record)
	v.Catalog = pricing.DisplayCatalog(record)
	v.Countdown = availability.NewCountdown(record.BookedUntil)
}

// SetActiveScheduledBooking forwards the user's scheduled-booking flag to the guard.
func (v *ViewState) SetActiveScheduledBooking(active bool) {
	v.guard.SetActiveScheduledBooking(active)
}

// Attempt runs a guarded action against the view's current status.
func (v *ViewState) Attempt(kind booking.ActionKind, now time.Time) booking.Decision {
	return v.guard.Attempt(kind, now, booking.AttemptContext{
		Status:            v.Status,
		FromSharedProfile: v.FromSharedProfile,
	})
}

// Intent is the booking payload for a duration of the current pricing.
func (v *ViewState) Intent(durationMinutes int) (models.BookingIntent, error) {
	intent, err := v.Pricing.Intent(durationMinutes)
	if err != nil {
		return models.BookingIntent{}, err
	}
	intent.ProviderID = v.Record.ID
	return intent, nil
}

// Snapshot is the serialisable form of the view at now.
func (v *ViewState) Snapshot(now time.Time) ViewSnapshot {
	return ViewSnapshot{
		ProviderID:                v.Record.ID,
		Prices:                    v.Pricing.Prices,
		ServiceName:               v.Pricing.ServiceName,
		PricingSource:             v.Pricing.Source,
		Status:                    v.Status,
		Catalog:                   v.Catalog,
		Countdown:                 v.Countdown.At(now),
		FromSharedProfile:         v.FromSharedProfile,
		HasActiveScheduledBooking: v.guard.HasActiveScheduledBooking(),
	}
}

type ViewSnapshot struct {
	ProviderID                string                    `json:"providerId"`
	Prices                    models.PriceMap           `json:"prices"`
	ServiceName               string                    `json:"serviceName"`
	PricingSource             models.PricingSource      `json:"pricingSource"`
	Status                    models.AvailabilityStatus `json:"status"`
	Catalog                   []models.CatalogEntry     `json:"catalog"`
	Countdown                 models.CountdownReading   `json:"countdown"`
	FromSharedProfile         bool                      `json:"fromSharedProfile"`
	HasActiveScheduledBooking bool                      `json:"hasActiveScheduledBooking"`
}
