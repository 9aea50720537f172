package remote

import (
	"context"
	"testing"
	"time"

	"github.com/jotlabs/jot/internal/logger"
	"github.com/jotlabs/jot/internal/note"
)

func TestFetchSnapshot(t *testing.T) {
	t.Parallel()

	srv := snapshotServer(t, []Envelope{
		{Type: SnapshotType, Notes: []note.Note{{ID: "a", Title: "Alpha"}}},
	})
	defer srv.Close()

	c := NewClient(srv.URL, "tok", logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notes, err := FetchSnapshot(ctx, c)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != "a" {
		t.Fatalf("notes: %+v", notes)
	}
}

func TestFetchSnapshotTimeout(t *testing.T) {
	t.Parallel()

	// A server that never pushes anything.
	srv := snapshotServer(t, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "tok", logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if _, err := FetchSnapshot(ctx, c); err == nil {
		t.Fatal("expected a timeout error")
	}
}
