package availability

import (
	"strings"

	"github.com/Philip2024394/website-massage--sub024/models"
)

// ResolveStatus derives the canonical status of a record. First match wins:
//  1. showcase profiles are always busy
//  2. status text (or availability text when status is empty) is mapped
//  3. a busy result that came from "offline" or from no text at all is re-checked
//     against the new-schema timestamps
//
// There is no offline output and nothing unrecognised maps to available.
func ResolveStatus(record models.ProviderRecord) models.AvailabilityStatus {
	if record.Showcase {
		return models.StatusBusy
	}

	status, fallback := MapStatusText(statusText(record))
	if status == models.StatusBusy && fallback {
		return timestampStatus(record)
	}
	return status
}

// MapStatusText maps raw status text. fallback is true when the text was "offline" or
// empty, the two cases where timestamp presence may still decide the status.
func MapStatusText(raw string) (status models.AvailabilityStatus, fallback bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "available":
		return models.StatusAvailable, false
	case "busy":
		return models.StatusBusy, false
	case "offline", "":
		return models.StatusBusy, true
	default:
		return models.StatusBusy, false
	}
}

func statusText(record models.ProviderRecord) string {
	if s := strings.TrimSpace(record.Status); s != "" {
		return s
	}
	return record.Availability
}

// timestampStatus prefers whichever of the available/busy timestamps is set. Both set
// resolves to busy.
// TODO: revisit the both-set case once the booking team decides which field wins.
func timestampStatus(record models.ProviderRecord) models.AvailabilityStatus {
	hasAvailable := strings.TrimSpace(record.AvailableAt) != ""
	hasBusy := strings.TrimSpace(record.BusyAt) != ""
	if hasAvailable && !hasBusy {
		return models.StatusAvailable
	}
	return models.StatusBusy
}
