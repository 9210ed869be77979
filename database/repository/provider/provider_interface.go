package providerRepo

import (
	"context"
	"errors"
)

// ErrProviderNotFound is returned when no document matches a provider id.
var ErrProviderNotFound = errors.New("provider not found")

// ProviderRepository defines read access to stored provider documents. Documents are
// returned as plain Go values (maps, slices, strings, float64, bool, time.Time) so the
// record adapter never sees driver types.
type ProviderRepository interface {
	// GetRawByID retrieves a provider document by its id (or Mongo _id hex).
	GetRawByID(ctx context.Context, id string) (map[string]any, error)
	// ListIDs returns the ids of every stored provider.
	ListIDs(ctx context.Context) ([]string, error)
}
