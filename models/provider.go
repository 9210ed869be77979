package models

import "strings"

// ProviderKind selects the catalogue shape used for a provider.
type ProviderKind string

const (
	KindGeneral   ProviderKind = "general"   // Massage therapists and similar services.
	KindSpecialty ProviderKind = "specialty" // Facial/treatment style places.
)

const (
	GeneralCatalogSize   = 5
	SpecialtyCatalogSize = 4
)

// CatalogSize is the fixed display catalogue length for the kind.
func (k ProviderKind) CatalogSize() int {
	if k == KindSpecialty {
		return SpecialtyCatalogSize
	}
	return GeneralCatalogSize
}

// ParseProviderKind maps free-form type labels onto a kind. Unknown labels are general.
func ParseProviderKind(raw string) ProviderKind {
	label := strings.ToLower(strings.TrimSpace(raw))
	for _, marker := range []string{"specialty", "facial", "skin", "beauty", "treatment", "clinic"} {
		if strings.Contains(label, marker) {
			return KindSpecialty
		}
	}
	return KindGeneral
}

// ProviderRecord is the fixed shape every resolver works against. It is produced once
// at the storage boundary and never mutated afterwards.
type ProviderRecord struct {
	ID   string       `json:"id"`
	Kind ProviderKind `json:"kind"`

	// Legacy per-duration prices, whole currency units.
	Price60  int64 `json:"price60,omitempty"`
	Price90  int64 `json:"price90,omitempty"`
	Price120 int64 `json:"price120,omitempty"`

	// Legacy duration->price blob as stored, possibly JSON encoded twice.
	EncodedPricing string `json:"encodedPricing,omitempty"`

	Catalog  []CatalogEntry `json:"catalog,omitempty"`  // Provider-entered services.
	Override *CatalogEntry  `json:"override,omitempty"` // Promoted single service, if any.

	Status       string `json:"status,omitempty"`
	Availability string `json:"availability,omitempty"`
	Showcase     bool   `json:"showcase,omitempty"`

	// New-schema availability timestamps; only presence matters.
	AvailableAt string `json:"availableAt,omitempty"`
	BusyAt      string `json:"busyAt,omitempty"`

	BookedUntil string `json:"bookedUntil,omitempty"`
}

// CatalogSize is the display catalogue length for this record.
func (r ProviderRecord) CatalogSize() int {
	return r.Kind.CatalogSize()
}

// LegacyPrices returns the legacy numeric fields as a price map.
func (r ProviderRecord) LegacyPrices() PriceMap {
	return PriceMap{Min60: r.Price60, Min90: r.Price90, Min120: r.Price120}
}
