// Package store provides session-scoped deck storage backends.
package store

import (
	"context"
	"errors"

	"github.com/slidecraft-ai/presentation-platform/internal/model"
)

// ErrNotFound is returned when no deck is stored under the given ID.
var ErrNotFound = errors.New("deck not found")

// DeckStore holds the current PresentationDocument per session. Semantics
// are a flat key-value put/get: last write wins, no versioning, entries
// expire with the session TTL.
type DeckStore interface {
	// Put stores the document under the given deck ID, replacing any
	// previous document wholesale.
	Put(ctx context.Context, id string, doc *model.PresentationDocument) error

	// Get returns the document stored under the given deck ID, or
	// ErrNotFound.
	Get(ctx context.Context, id string) (*model.PresentationDocument, error)

	// Delete removes the document stored under the given deck ID. Deleting
	// a missing entry is not an error.
	Delete(ctx context.Context, id string) error

	// Ping reports whether the backend is usable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
