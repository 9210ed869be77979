package booking

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philip2024394/website-massage--sub024/models"
)

var (
	t0        = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	available = AttemptContext{Status: models.StatusAvailable}
	busy      = AttemptContext{Status: models.StatusBusy}
)

func TestGuard_DebounceBoundary(t *testing.T) {
	g := NewGuard(DefaultDebounceWindow)

	assert.True(t, g.Attempt(ActionBook, t0, available).Allowed)

	second := g.Attempt(ActionBook, t0.Add(399*time.Millisecond), available)
	assert.False(t, second.Allowed)
	assert.Equal(t, ReasonDebounced, second.Reason)
	assert.Empty(t, second.Message, "debounce fails silently")

	assert.True(t, g.Attempt(ActionBook, t0.Add(401*time.Millisecond), available).Allowed)
}

func TestGuard_ExactWindowIsAllowed(t *testing.T) {
	g := NewGuard(0)
	require.True(t, g.Attempt(ActionPriceView, t0, available).Allowed)
	assert.True(t, g.Attempt(ActionPriceView, t0.Add(400*time.Millisecond), available).Allowed)
}

func TestGuard_KindsDebounceIndependently(t *testing.T) {
	g := NewGuard(DefaultDebounceWindow)
	require.True(t, g.Attempt(ActionBook, t0, available).Allowed)
	assert.True(t, g.Attempt(ActionSchedule, t0.Add(10*time.Millisecond), available).Allowed)
	assert.True(t, g.Attempt(ActionPriceView, t0.Add(20*time.Millisecond), available).Allowed)
}

func TestGuard_SharedProfileBypassesBusy(t *testing.T) {
	shared := NewGuard(DefaultDebounceWindow)
	assert.True(t, shared.Attempt(ActionBook, t0, AttemptContext{Status: models.StatusBusy, FromSharedProfile: true}).Allowed)

	direct := NewGuard(DefaultDebounceWindow)
	d := direct.Attempt(ActionBook, t0, busy)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonProviderBusy, d.Reason)
	assert.NotEmpty(t, d.Message)
}

func TestGuard_ActiveBookingBlocksBookAndSchedule(t *testing.T) {
	g := NewGuard(DefaultDebounceWindow)
	g.SetActiveScheduledBooking(true)
	require.True(t, g.HasActiveScheduledBooking())

	shared := AttemptContext{Status: models.StatusAvailable, FromSharedProfile: true}
	for i, kind := range []ActionKind{ActionBook, ActionSchedule} {
		d := g.Attempt(kind, t0.Add(time.Duration(i)*time.Hour), shared)
		assert.False(t, d.Allowed)
		assert.Equal(t, ReasonActiveBooking, d.Reason)
		assert.NotEmpty(t, d.Message)
	}

	// Viewing prices is not a booking.
	assert.True(t, g.Attempt(ActionPriceView, t0, available).Allowed)
}

func TestGuard_RejectionsDoNotMoveDebounceClock(t *testing.T) {
	g := NewGuard(DefaultDebounceWindow)
	g.SetActiveScheduledBooking(true)
	assert.False(t, g.Attempt(ActionBook, t0, available).Allowed)

	g.SetActiveScheduledBooking(false)
	assert.True(t, g.Attempt(ActionBook, t0.Add(time.Millisecond), available).Allowed)
}

func TestGuard_ConcurrentAttemptsAllowOnce(t *testing.T) {
	g := NewGuard(DefaultDebounceWindow)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.Attempt(ActionBook, t0, available).Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, allowed)
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, Decision{Allowed: true}.Err())

	err := Decision{Reason: ReasonDebounced}.Err()
	var guardErr *GuardError
	require.True(t, errors.As(err, &guardErr))
	assert.True(t, guardErr.Silent())
	assert.Equal(t, "debounced", err.Error())
}

func TestParseActionKind(t *testing.T) {
	kind, err := ParseActionKind("Price-View")
	require.NoError(t, err)
	assert.Equal(t, ActionPriceView, kind)

	_, err = ParseActionKind("cancel")
	assert.Error(t, err)
}
