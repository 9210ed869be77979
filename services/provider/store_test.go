package provider

import (
	"testing"
	"time"

	"github.com/Philip2024394/website-massage--sub024/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(id string) *ViewState {
	return NewViewState(models.ProviderRecord{ID: id, Status: "available"}, false, 0)
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestViewStoreOpenGetClose(t *testing.T) {
	store := NewViewStore(time.Minute)
	now := time.Now()

	session := store.Open(newTestState("p-1"), now)
	require.NotEmpty(t, session.ID)
	assert.Equal(t, "p-1", session.ProviderID)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(session.ID, now.Add(30*time.Second))
	require.NoError(t, err)
	assert.Same(t, session, got)

	require.NoError(t, store.Close(session.ID))
	assert.True(t, isClosed(session.Done()))
	assert.Equal(t, 0, store.Len())

	_, err = store.Get(session.ID, now)
	assert.ErrorIs(t, err, ErrViewNotFound)
	assert.ErrorIs(t, store.Close(session.ID), ErrViewNotFound)
}

func TestViewStoreExpiresIdleSessions(t *testing.T) {
	store := NewViewStore(time.Minute)
	now := time.Now()
	session := store.Open(newTestState("p-1"), now)

	// Each Get refreshes the idle clock.
	_, err := store.Get(session.ID, now.Add(50*time.Second))
	require.NoError(t, err)
	_, err = store.Get(session.ID, now.Add(100*time.Second))
	require.NoError(t, err)

	_, err = store.Get(session.ID, now.Add(161*time.Second))
	assert.ErrorIs(t, err, ErrViewNotFound)
	assert.True(t, isClosed(session.Done()))
}

func TestViewStoreOpenSweepsExpired(t *testing.T) {
	store := NewViewStore(time.Minute)
	now := time.Now()
	old := store.Open(newTestState("p-1"), now)

	store.Open(newTestState("p-2"), now.Add(2*time.Minute))

	assert.Equal(t, 1, store.Len())
	assert.True(t, isClosed(old.Done()))
}

func TestViewStoreDefaultTTL(t *testing.T) {
	assert.Equal(t, 30*time.Minute, NewViewStore(0).ttl)
}
