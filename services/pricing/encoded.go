package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Philip2024394/website-massage--sub024/models"
)

// storedThousandsLimit: stored amounts below this are thousands of currency units.
const storedThousandsLimit = 1000

// NormalizeAmount converts a stored price into whole currency units. Non-positive and
// non-finite values become 0.
func NormalizeAmount(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	if v < storedThousandsLimit {
		v *= 1000
	}
	return int64(math.Round(v))
}

// ParseAmount reads a stored price that may be a number or numeric text.
func ParseAmount(v any) int64 {
	switch n := v.(type) {
	case float64:
		return NormalizeAmount(n)
	case float32:
		return NormalizeAmount(float64(n))
	case int:
		return NormalizeAmount(float64(n))
	case int32:
		return NormalizeAmount(float64(n))
	case int64:
		return NormalizeAmount(float64(n))
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return NormalizeAmount(f)
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return NormalizeAmount(f)
	}
	return 0
}

// ParseEncodedPricing decodes the legacy duration->price blob. A JSON string holding
// JSON is decoded once more. Anything malformed yields ok=false.
func ParseEncodedPricing(raw string) (prices models.PriceMap, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.PriceMap{}, false
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return models.PriceMap{}, false
	}
	if inner, isString := decoded.(string); isString {
		if err := json.Unmarshal([]byte(inner), &decoded); err != nil {
			return models.PriceMap{}, false
		}
	}

	obj, isObject := decoded.(map[string]any)
	if !isObject {
		return models.PriceMap{}, false
	}
	prices = models.PriceMap{
		Min60:  tierAmount(obj, "60"),
		Min90:  tierAmount(obj, "90"),
		Min120: tierAmount(obj, "120"),
	}
	return prices, prices.Any()
}

func tierAmount(obj map[string]any, minutes string) int64 {
	for _, key := range []string{minutes, minutes + "min", "price" + minutes} {
		if v, exists := obj[key]; exists {
			return ParseAmount(v)
		}
	}
	return 0
}
