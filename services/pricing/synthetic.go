package pricing

import (
	"github.com/Philip2024394/website-massage--sub024/models"
)

// MinSyntheticPrice floors every generated tier price.
const MinSyntheticPrice int64 = 50000

// namePrime spreads consecutive slots across the name list.
const namePrime = 7

// PriceOffsets are the only variations applied to a tier's base price.
var PriceOffsets = []int64{-10000, -8000, -5000, 5000, 8000, 10000}

// Template is the fixed name pool and tier base prices for one provider kind.
type Template struct {
	Names []string
	Base  models.PriceMap
}

var (
	GeneralTemplate = Template{
		Names: []string{
			"Traditional Massage",
			"Deep Tissue Massage",
			"Swedish Massage",
			"Hot Stone Massage",
			"Reflexology",
		},
		Base: models.PriceMap{Min60: 250000, Min90: 350000, Min120: 450000},
	}
	SpecialtyTemplate = Template{
		Names: []string{
			"Signature Facial",
			"Body Scrub",
			"Aromatherapy Treatment",
			"Lymphatic Drainage",
		},
		Base: models.PriceMap{Min60: 300000, Min90: 420000, Min120: 540000},
	}
)

// TemplateFor returns the synthetic template for a provider kind.
func TemplateFor(kind models.ProviderKind) Template {
	if kind == models.KindSpecialty {
		return SpecialtyTemplate
	}
	return GeneralTemplate
}

// DefaultServiceName is the label used when a price has no named service behind it.
func DefaultServiceName(kind models.ProviderKind) string {
	return TemplateFor(kind).Names[0]
}

// Synthesize builds n display-only catalogue entries for id. The result depends only
// on (id, kind, n).
func Synthesize(id string, kind models.ProviderKind, n int) []models.CatalogEntry {
	if n <= 0 {
		return []models.CatalogEntry{}
	}
	tpl := TemplateFor(kind)
	seed := Seed(id)
	entries := make([]models.CatalogEntry, 0, n)
	for slot := 0; slot < n; slot++ {
		nameIdx := (seed + int64(slot)*namePrime) % int64(len(tpl.Names))
		entries = append(entries, models.CatalogEntry{
			Name:      tpl.Names[nameIdx],
			Price60:   syntheticPrice(tpl.Base.Min60, seed, slot, 0),
			Price90:   syntheticPrice(tpl.Base.Min90, seed, slot, 1),
			Price120:  syntheticPrice(tpl.Base.Min120, seed, slot, 2),
			Synthetic: true,
		})
	}
	return entries
}

func syntheticPrice(base, seed int64, slot, tier int) int64 {
	idx := int(Derive(seed, int64(slot*3+tier)) * float64(len(PriceOffsets)))
	if idx >= len(PriceOffsets) {
		idx = len(PriceOffsets) - 1
	}
	price := base + PriceOffsets[idx]
	if price < MinSyntheticPrice {
		price = MinSyntheticPrice
	}
	return price
}
