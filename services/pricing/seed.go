package pricing

import "unicode/utf16"

// Seed hashes an identifier into a stable non-negative integer using the classic
// rolling hash (h = h*31 + code unit) truncated to 32-bit signed, then absolute value.
// Characters are read as UTF-16 code units so ids hash the same as they do in the
// web clients.
func Seed(id string) int64 {
	var h int32
	for _, unit := range utf16.Encode([]rune(id)) {
		h = h*31 + int32(unit)
	}
	seed := int64(h)
	if seed < 0 {
		seed = -seed
	}
	return seed
}

// Derive maps (seed, salt) to a float in [0, 1).
//
// The value comes from a splitmix64 mixer rather than a sine transform, so results are
// bit-identical on every platform. It is only fit for display placeholders.
func Derive(seed, salt int64) float64 {
	x := splitmix64(uint64(seed) ^ splitmix64(uint64(salt)))
	return float64(x>>11) / (1 << 53)
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
