package pricing

import (
	"strings"

	"github.com/Philip2024394/website-massage--sub024/models"
)

// Combine merges the authoritative catalogue, an optional override entry and synthetic
// fill into a display catalogue of at most n entries.
//
// Only complete authoritative entries are kept, in their original order. The override
// follows them unless an entry with the same name is already present. Synthetic entries
// fill the remainder, skipping names already shown.
func Combine(authoritative []models.CatalogEntry, override *models.CatalogEntry, id string, kind models.ProviderKind, n int) []models.CatalogEntry {
	if n <= 0 {
		return []models.CatalogEntry{}
	}

	out := make([]models.CatalogEntry, 0, n)
	seen := make(map[string]struct{}, n)
	add := func(e models.CatalogEntry) {
		out = append(out, e)
		seen[nameKey(e.Name)] = struct{}{}
	}

	for _, e := range authoritative {
		if !e.Complete() {
			continue
		}
		e.Synthetic = false
		add(e)
	}

	if override != nil && override.Complete() {
		if _, dup := seen[nameKey(override.Name)]; !dup {
			o := *override
			o.Synthetic = false
			add(o)
		}
	}

	if len(out) < n {
		for _, e := range Synthesize(id, kind, n) {
			if len(out) >= n {
				break
			}
			if _, dup := seen[nameKey(e.Name)]; dup {
				continue
			}
			add(e)
		}
	}

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// DisplayCatalog is Combine applied to a record at its kind's target size.
func DisplayCatalog(record models.ProviderRecord) []models.CatalogEntry {
	return Combine(record.Catalog, record.Override, record.ID, record.Kind, record.CatalogSize())
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
