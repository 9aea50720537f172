// Package remote speaks to the note service: HTTP for writes and auth,
// WebSocket for the snapshot subscription.
package remote

import (
	"context"

	"github.com/jotlabs/jot/internal/note"
)

// SnapshotFunc receives the full ordered collection on every remote change.
// The store delivers a consistent, fully-ordered view, never a partial delta.
type SnapshotFunc func(notes []note.Note)

// Subscription is the cancellable handle returned by Subscribe. Stop releases
// the feed and is safe to call more than once.
type Subscription interface {
	Stop()
}

// Store is the remote document collection. Writes are asynchronous from the
// caller's perspective beyond the returned error; results are observed
// through the subscription feed.
type Store interface {
	Subscribe(ctx context.Context, fn SnapshotFunc) (Subscription, error)
	Create(ctx context.Context, fields note.Fields) (string, error)
	Update(ctx context.Context, id string, fields note.Fields) error
	Delete(ctx context.Context, id string) error
}
