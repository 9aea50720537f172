package remote

import (
	"context"
	"fmt"

	"github.com/jotlabs/jot/internal/note"
)

// FetchSnapshot opens a short-lived subscription and returns the first
// snapshot the store pushes. One-shot commands use this instead of holding a
// feed open.
func FetchSnapshot(ctx context.Context, store Store) ([]note.Note, error) {
	snapshots := make(chan []note.Note, 1)
	sub, err := store.Subscribe(ctx, func(notes []note.Note) {
		select {
		case snapshots <- notes:
		default:
		}
	})
	if err != nil {
		return nil, err
	}
	defer sub.Stop()

	select {
	case notes := <-snapshots:
		return notes, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("timed out waiting for snapshot: %w", ctx.Err())
	}
}
