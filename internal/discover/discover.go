// Package discover defines the scholarship discovery capability and its
// simulated-source implementation. Discovery is the only asynchronous edge of
// the system: callers run it, wait for a batch, and hand the batch to the
// catalog's deduplicating ingest.
package discover

import (
	"context"
	"errors"

	"github.com/mvaldez/scholarmatch/internal/models"
)

var ErrInvalidURL = errors.New("invalid discovery url")

// Discoverer produces batches of well-formed scholarship records with
// provenance set. Implementations may take arbitrarily long and must honor
// context cancellation.
type Discoverer interface {
	// Discover runs against the named sources; an empty list means the
	// default registry.
	Discover(ctx context.Context, sources []string) ([]models.Scholarship, error)
	// DiscoverFromURL runs against a single user-supplied URL.
	DiscoverFromURL(ctx context.Context, rawURL string) ([]models.Scholarship, error)
}
