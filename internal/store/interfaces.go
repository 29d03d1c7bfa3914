package store

import (
	"context"

	"github.com/jzupan/go-card-wallet/models"
)

// CardStorage is the local card collection. The collection is owned
// exclusively by the store; callers hold card IDs and must re-resolve them
// against the latest snapshot before acting on a card.
type CardStorage interface {
	// List returns the current snapshot of the whole collection.
	List() Snapshot

	// Watch returns a live stream of collection snapshots. The current
	// snapshot is delivered immediately, then a new one after every
	// mutation, until ctx is cancelled. Slow receivers only ever see the
	// most recent snapshot.
	Watch(ctx context.Context) <-chan Snapshot

	// Upsert replaces the card with the same ID in place, or appends it.
	Upsert(ctx context.Context, card models.Card) error

	// DeleteByID removes the card and best-effort unlinks its image file.
	DeleteByID(ctx context.Context, id string) error

	// OverwriteAll unconditionally replaces the whole collection.
	OverwriteAll(ctx context.Context, cards []models.Card) error
}
