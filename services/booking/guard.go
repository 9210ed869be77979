package booking

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Philip2024394/website-massage--sub024/models"
)

// ActionKind is a user-triggered action the guard protects.
type ActionKind string

const (
	ActionBook      ActionKind = "book"
	ActionSchedule  ActionKind = "schedule"
	ActionPriceView ActionKind = "price_view"
)

// DefaultDebounceWindow swallows the duplicate pointer+click events of one gesture.
const DefaultDebounceWindow = 400 * time.Millisecond

// ParseActionKind accepts "book", "schedule" and "price_view" (or "price-view").
func ParseActionKind(raw string) (ActionKind, error) {
	switch ActionKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")) {
	case ActionBook:
		return ActionBook, nil
	case ActionSchedule:
		return ActionSchedule, nil
	case ActionPriceView:
		return ActionPriceView, nil
	}
	return "", fmt.Errorf("unknown action kind: %q", raw)
}

func (k ActionKind) createsBooking() bool {
	return k == ActionBook || k == ActionSchedule
}

// AttemptContext carries what the guard needs to know about the provider and the
// surface the action came from.
type AttemptContext struct {
	Status            models.AvailabilityStatus
	FromSharedProfile bool // Shared links are never blocked by computed busy status.
}

// Decision is the outcome of one attempt. Message is empty for allowed and debounced
// attempts.
type Decision struct {
	Allowed bool         `json:"allowed"`
	Reason  RejectReason `json:"reason,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Err returns a *GuardError for rejected decisions.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return NewGuardError(d.Reason, d.Message)
}

// Guard owns the debounce state of one view session.
type Guard struct {
	mu                        sync.Mutex
	window                    time.Duration
	lastAllowed               map[ActionKind]time.Time
	hasActiveScheduledBooking bool
}

// NewGuard returns a guard with the given debounce window; non-positive windows use
// DefaultDebounceWindow.
func NewGuard(window time.Duration) *Guard {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Guard{
		window:      window,
		lastAllowed: make(map[ActionKind]time.Time),
	}
}

// SetActiveScheduledBooking records whether the user holds an unresolved scheduled booking.
func (g *Guard) SetActiveScheduledBooking(active bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hasActiveScheduledBooking = active
}

func (g *Guard) HasActiveScheduledBooking() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hasActiveScheduledBooking
}

// Attempt decides whether an action may fire at now. Checks run in order:
// active scheduled booking (book/schedule only, never bypassed), provider busy (skipped
// for shared-profile surfaces), then the per-kind debounce window. Only allowed
// attempts move the debounce clock.
func (g *Guard) Attempt(kind ActionKind, now time.Time, ac AttemptContext) Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	if kind.createsBooking() && g.hasActiveScheduledBooking {
		return Decision{Reason: ReasonActiveBooking, Message: msgActiveBooking}
	}
	if ac.Status != models.StatusAvailable && !ac.FromSharedProfile {
		return Decision{Reason: ReasonProviderBusy, Message: msgProviderBusy}
	}
	if last, ok := g.lastAllowed[kind]; ok && now.Sub(last) < g.window {
		return Decision{Reason: ReasonDebounced}
	}

	g.lastAllowed[kind] = now
	return Decision{Allowed: true}
}
