package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jotlabs/jot/internal/logger"
	"github.com/jotlabs/jot/internal/note"
)

func snapshotServer(t *testing.T, envelopes []Envelope) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/api/notes/subscribe" {
			t.Errorf("path: got %q", r.URL.Path)
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}

		for _, env := range envelopes {
			if err := conn.WriteJSON(env); err != nil {
				return
			}
		}

		// Keep the connection open until the client stops.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				conn.Close()
				return
			}
		}
	}))
}

func TestSubscribeDeliversSnapshots(t *testing.T) {
	t.Parallel()

	srv := snapshotServer(t, []Envelope{
		{Type: "PRESENCE"},
		{Type: SnapshotType, Notes: []note.Note{
			{ID: "b", Title: "Beta"},
			{ID: "a", Title: "Alpha"},
		}},
	})
	defer srv.Close()

	c := NewClient(srv.URL, "tok", logger.Nop())

	snapshots := make(chan []note.Note, 4)
	sub, err := c.Subscribe(context.Background(), func(notes []note.Note) {
		snapshots <- notes
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer sub.Stop()

	select {
	case notes := <-snapshots:
		// Unknown message types are skipped; the first delivery is the snapshot.
		if len(notes) != 2 || notes[0].ID != "b" || notes[1].ID != "a" {
			t.Fatalf("snapshot: %+v", notes)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
}

func TestSubscribeEmptySnapshot(t *testing.T) {
	t.Parallel()

	srv := snapshotServer(t, []Envelope{{Type: SnapshotType}})
	defer srv.Close()

	c := NewClient(srv.URL, "", logger.Nop())

	snapshots := make(chan []note.Note, 1)
	sub, err := c.Subscribe(context.Background(), func(notes []note.Note) {
		snapshots <- notes
	})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer sub.Stop()

	select {
	case notes := <-snapshots:
		if notes == nil {
			t.Fatal("empty snapshot delivered as nil")
		}
		if len(notes) != 0 {
			t.Fatalf("snapshot: %+v", notes)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
}

func TestSubscriptionStopIsIdempotent(t *testing.T) {
	t.Parallel()

	srv := snapshotServer(t, nil)
	defer srv.Close()

	c := NewClient(srv.URL, "tok", logger.Nop())
	sub, err := c.Subscribe(context.Background(), func([]note.Note) {})
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	sub.Stop()
	sub.Stop()
}

func TestSubscribeRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad", logger.Nop())
	if _, err := c.Subscribe(context.Background(), func([]note.Note) {}); err == nil {
		t.Fatal("expected an error")
	}
}
