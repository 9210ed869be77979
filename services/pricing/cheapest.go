package pricing

import "github.com/Philip2024394/website-massage--sub024/models"

// Cheapest returns the complete entry with the lowest total across all three tiers.
// Comparing totals keeps the label and all three tier prices describing one service.
// Ties keep the earliest entry. Returns nil when nothing is complete.
func Cheapest(catalog []models.CatalogEntry) *models.CatalogEntry {
	best := -1
	for i, e := range catalog {
		if !e.Complete() {
			continue
		}
		if best < 0 || e.Total() < catalog[best].Total() {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	selected := catalog[best]
	return &selected
}

func authoritativeOnly(catalog []models.CatalogEntry) []models.CatalogEntry {
	out := make([]models.CatalogEntry, 0, len(catalog))
	for _, e := range catalog {
		if !e.Synthetic {
			out = append(out, e)
		}
	}
	return out
}
