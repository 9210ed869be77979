package provider

import (
	"testing"
	"time"

	"github.com/Philip2024394/website-massage--sub024/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecordFieldFallbacks(t *testing.T) {
	raw := map[string]any{
		"$id":          "p-1",
		"providerType": "Facial Clinic",
		"price_60":     "250",
		"pricing90":    350.0,
		"price120":     "450,000",
		"availability": "Available",
		"isShowcase":   "false",
		"busyUntil":    "2024-05-01T10:00:00Z",
	}

	record := NormalizeRecord(raw)

	assert.Equal(t, "p-1", record.ID)
	assert.Equal(t, models.KindSpecialty, record.Kind)
	assert.Equal(t, int64(250000), record.Price60)
	assert.Equal(t, int64(350000), record.Price90)
	assert.Equal(t, int64(450000), record.Price120)
	assert.Equal(t, "Available", record.Availability)
	assert.False(t, record.Showcase)
	assert.Equal(t, "2024-05-01T10:00:00Z", record.BookedUntil)
}

func TestNormalizeRecordFirstKeyWins(t *testing.T) {
	record := NormalizeRecord(map[string]any{
		"id":         "primary",
		"providerId": "secondary",
		"price60":    nil,
		"price_60":   300.0,
	})
	assert.Equal(t, "primary", record.ID)
	// nil values are treated as absent.
	assert.Equal(t, int64(300000), record.Price60)
}

func TestNormalizeRecordCatalogAsText(t *testing.T) {
	record := NormalizeRecord(map[string]any{
		"id":       "p-2",
		"services": `[{"name":"Thai Massage","price60":200,"price90":300,"price120":400},"junk",{"title":"Foot Spa","60":"150","90":"220","120":"290"}]`,
	})

	require.Len(t, record.Catalog, 2)
	assert.Equal(t, models.CatalogEntry{Name: "Thai Massage", Price60: 200000, Price90: 300000, Price120: 400000}, record.Catalog[0])
	assert.Equal(t, models.CatalogEntry{Name: "Foot Spa", Price60: 150000, Price90: 220000, Price120: 290000}, record.Catalog[1])
}

func TestNormalizeRecordCatalogAsList(t *testing.T) {
	record := NormalizeRecord(map[string]any{
		"menu": []any{
			map[string]any{"serviceName": "Shiatsu", "price_60": 180.0, "price_90": 260.0, "price_120": 340.0},
		},
	})
	require.Len(t, record.Catalog, 1)
	assert.Equal(t, "Shiatsu", record.Catalog[0].Name)
	assert.True(t, record.Catalog[0].Complete())
}

func TestNormalizeRecordDoubleEncodedCatalog(t *testing.T) {
	record := NormalizeRecord(map[string]any{
		"services": `"[{\"name\":\"Lomi Lomi\",\"price60\":210,\"price90\":310,\"price120\":410}]"`,
	})
	require.Len(t, record.Catalog, 1)
	assert.Equal(t, "Lomi Lomi", record.Catalog[0].Name)
}

func TestNormalizeRecordMalformedCatalog(t *testing.T) {
	record := NormalizeRecord(map[string]any{"services": "[not json"})
	assert.Empty(t, record.Catalog)
}

func TestNormalizeRecordOverride(t *testing.T) {
	record := NormalizeRecord(map[string]any{
		"traditionalMassage": map[string]any{"price60": 100.0, "price90": 150.0, "price120": 200.0},
	})
	require.NotNil(t, record.Override)
	assert.Equal(t, "Traditional Massage", record.Override.Name)
	assert.Equal(t, int64(100000), record.Override.Price60)

	assert.Nil(t, NormalizeRecord(map[string]any{"override": 42.0}).Override)
}

func TestNormalizeRecordEncodedPricing(t *testing.T) {
	structured := NormalizeRecord(map[string]any{
		"pricing": map[string]any{"60": 250.0, "90": 350.0, "120": 450.0},
	})
	assert.JSONEq(t, `{"60":250,"90":350,"120":450}`, structured.EncodedPricing)

	text := NormalizeRecord(map[string]any{"prices": `{"60":1}`})
	assert.Equal(t, `{"60":1}`, text.EncodedPricing)
}

func TestNormalizeRecordTimestamps(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("WITA", 8*3600))
	record := NormalizeRecord(map[string]any{
		"availableAt": at,
		"busy":        1714557600000.0,
	})
	assert.Equal(t, "2024-05-01T02:00:00Z", record.AvailableAt)
	assert.Equal(t, "1714557600000", record.BusyAt)

	assert.Empty(t, NormalizeRecord(map[string]any{"available": time.Time{}}).AvailableAt)
}

func TestNormalizeRecordNumericID(t *testing.T) {
	assert.Equal(t, "12345", NormalizeRecord(map[string]any{"id": 12345.0}).ID)
	assert.Equal(t, models.ProviderRecord{}, NormalizeRecord(nil))
}
