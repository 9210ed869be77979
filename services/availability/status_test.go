package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Philip2024394/website-massage--sub024/models"
)

func TestResolveStatus_DefaultsToBusy(t *testing.T) {
	for _, raw := range []string{"", "active", "xyz", "   ", "AVAILABLE-ish"} {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, models.StatusBusy, ResolveStatus(models.ProviderRecord{Status: raw}))
		})
	}
}

func TestResolveStatus_TextMapping(t *testing.T) {
	testCases := []struct {
		name     string
		record   models.ProviderRecord
		expected models.AvailabilityStatus
	}{
		{"available", models.ProviderRecord{Status: "Available"}, models.StatusAvailable},
		{"padded available", models.ProviderRecord{Status: "  available "}, models.StatusAvailable},
		{"busy", models.ProviderRecord{Status: "BUSY"}, models.StatusBusy},
		{"offline collapses", models.ProviderRecord{Status: "Offline"}, models.StatusBusy},
		{"availability text used when status empty", models.ProviderRecord{Availability: "available"}, models.StatusAvailable},
		{"status wins over availability", models.ProviderRecord{Status: "busy", Availability: "available"}, models.StatusBusy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveStatus(tc.record))
		})
	}
}

func TestResolveStatus_ShowcaseOverride(t *testing.T) {
	record := models.ProviderRecord{Status: "Available", Showcase: true, AvailableAt: "2026-10-18T10:00:00Z"}
	assert.Equal(t, models.StatusBusy, ResolveStatus(record))
}

func TestResolveStatus_TimestampFallback(t *testing.T) {
	const ts = "2026-10-18T10:00:00Z"
	testCases := []struct {
		name     string
		record   models.ProviderRecord
		expected models.AvailabilityStatus
	}{
		{"absent text, available set", models.ProviderRecord{AvailableAt: ts}, models.StatusAvailable},
		{"offline, available set", models.ProviderRecord{Status: "offline", AvailableAt: ts}, models.StatusAvailable},
		{"absent text, busy set", models.ProviderRecord{BusyAt: ts}, models.StatusBusy},
		{"both set is busy", models.ProviderRecord{AvailableAt: ts, BusyAt: ts}, models.StatusBusy},
		{"explicit busy ignores timestamps", models.ProviderRecord{Status: "busy", AvailableAt: ts}, models.StatusBusy},
		{"unrecognised text ignores timestamps", models.ProviderRecord{Status: "xyz", AvailableAt: ts}, models.StatusBusy},
		{"blank timestamp is absent", models.ProviderRecord{AvailableAt: "  "}, models.StatusBusy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveStatus(tc.record))
		})
	}
}
