package provider

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Philip2024394/website-massage--sub024/models"
	"github.com/Philip2024394/website-massage--sub024/services/pricing"
)

// Field name fallbacks, first present wins. Stored documents went through several
// schema generations, so each concept may live under more than one key.
var (
	idKeys           = []string{"id", "$id", "providerId", "_id"}
	kindKeys         = []string{"kind", "providerType", "type", "category"}
	price60Keys      = []string{"price60", "price_60", "pricing60"}
	price90Keys      = []string{"price90", "price_90", "pricing90"}
	price120Keys     = []string{"price120", "price_120", "pricing120"}
	encodedKeys      = []string{"pricing", "prices", "pricingJson"}
	catalogKeys      = []string{"services", "serviceCatalog", "catalog", "menu"}
	overrideKeys     = []string{"traditionalMassage", "override", "featuredService"}
	statusKeys       = []string{"status"}
	availabilityKeys = []string{"availability", "availabilityStatus"}
	showcaseKeys     = []string{"isShowcase", "showcase", "isShowcaseProfile"}
	availableAtKeys  = []string{"available", "availableAt"}
	busyAtKeys       = []string{"busy", "busyAt"}
	bookedUntilKeys  = []string{"bookedUntil", "busyUntil"}

	entryNameKeys = []string{"name", "serviceName", "title"}
)

// NormalizeRecord adapts a raw provider document into the fixed record shape. It never
// fails: anything missing or malformed is left at its zero value.
func NormalizeRecord(raw map[string]any) models.ProviderRecord {
	if raw == nil {
		return models.ProviderRecord{}
	}
	return models.ProviderRecord{
		ID:             textField(raw, idKeys),
		Kind:           models.ParseProviderKind(textField(raw, kindKeys)),
		Price60:        amountField(raw, price60Keys),
		Price90:        amountField(raw, price90Keys),
		Price120:       amountField(raw, price120Keys),
		EncodedPricing: encodedField(raw, encodedKeys),
		Catalog:        catalogField(raw, catalogKeys),
		Override:       overrideField(raw, overrideKeys),
		Status:         textField(raw, statusKeys),
		Availability:   textField(raw, availabilityKeys),
		Showcase:       boolField(raw, showcaseKeys),
		AvailableAt:    timestampField(raw, availableAtKeys),
		BusyAt:         timestampField(raw, busyAtKeys),
		BookedUntil:    timestampField(raw, bookedUntilKeys),
	}
}

func lookup(raw map[string]any, keys []string) (any, bool) {
	for _, key := range keys {
		if v, ok := raw[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func textField(raw map[string]any, keys []string) string {
	v, ok := lookup(raw, keys)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int, int32, int64:
		return fmt.Sprint(s)
	}
	return ""
}

func amountField(raw map[string]any, keys []string) int64 {
	v, ok := lookup(raw, keys)
	if !ok {
		return 0
	}
	return pricing.ParseAmount(v)
}

func boolField(raw map[string]any, keys []string) bool {
	v, ok := lookup(raw, keys)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	}
	return false
}

// timestampField keeps timestamp text as stored; only presence and parseability matter
// downstream. Native times are rendered as RFC3339.
func timestampField(raw map[string]any, keys []string) string {
	v, ok := lookup(raw, keys)
	if !ok {
		return ""
	}
	switch ts := v.(type) {
	case string:
		return strings.TrimSpace(ts)
	case time.Time:
		if ts.IsZero() {
			return ""
		}
		return ts.UTC().Format(time.RFC3339)
	case float64:
		if ts <= 0 {
			return ""
		}
		return strconv.FormatInt(int64(ts), 10)
	case int64:
		if ts <= 0 {
			return ""
		}
		return strconv.FormatInt(ts, 10)
	}
	return ""
}

// encodedField returns the legacy pricing blob as text. Structured blobs are re-encoded
// so the resolver always parses one representation.
func encodedField(raw map[string]any, keys []string) string {
	v, ok := lookup(raw, keys)
	if !ok {
		return ""
	}
	if s, isString := v.(string); isString {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func catalogField(raw map[string]any, keys []string) []models.CatalogEntry {
	v, ok := lookup(raw, keys)
	if !ok {
		return nil
	}
	items := decodeList(v)
	entries := make([]models.CatalogEntry, 0, len(items))
	for _, item := range items {
		obj, isObject := item.(map[string]any)
		if !isObject {
			continue
		}
		entries = append(entries, entryFrom(obj))
	}
	return entries
}

func overrideField(raw map[string]any, keys []string) *models.CatalogEntry {
	v, ok := lookup(raw, keys)
	if !ok {
		return nil
	}
	obj, isObject := decodeValue(v).(map[string]any)
	if !isObject {
		return nil
	}
	entry := entryFrom(obj)
	if entry.Name == "" {
		entry.Name = pricing.GeneralTemplate.Names[0]
	}
	return &entry
}

func entryFrom(obj map[string]any) models.CatalogEntry {
	return models.CatalogEntry{
		Name:     textField(obj, entryNameKeys),
		Price60:  amountField(obj, append([]string{"60"}, price60Keys...)),
		Price90:  amountField(obj, append([]string{"90"}, price90Keys...)),
		Price120: amountField(obj, append([]string{"120"}, price120Keys...)),
	}
}

// decodeValue unwraps JSON text, at most twice; anything else is returned unchanged.
func decodeValue(v any) any {
	for i := 0; i < 2; i++ {
		s, isString := v.(string)
		if !isString {
			return v
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil
		}
		v = decoded
	}
	return v
}

func decodeList(v any) []any {
	if list, isList := decodeValue(v).([]any); isList {
		return list
	}
	return nil
}
