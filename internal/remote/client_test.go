package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jotlabs/jot/internal/logger"
	"github.com/jotlabs/jot/internal/note"
)

func TestClientCreate(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotAuth string
	var gotBody note.Fields

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "note-42"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", logger.Nop())

	id, err := c.Create(context.Background(), note.Fields{"title": "Untitled"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if id != "note-42" {
		t.Fatalf("id: got %q, want %q", id, "note-42")
	}
	if gotMethod != http.MethodPost || gotPath != "/v1/api/notes" {
		t.Fatalf("request: %s %s", gotMethod, gotPath)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("auth header: got %q", gotAuth)
	}
	if gotBody["title"] != "Untitled" {
		t.Fatalf("body: %+v", gotBody)
	}
}

func TestClientCreateBadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", logger.Nop())
	if _, err := c.Create(context.Background(), note.Fields{}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestClientUpdate(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	var gotBody note.Fields

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", logger.Nop())

	fields := note.Fields{"title": "Groceries", "updatedAt": "now"}
	if err := c.Update(context.Background(), "note-1", fields); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if gotMethod != http.MethodPatch || gotPath != "/v1/api/notes/note-1" {
		t.Fatalf("request: %s %s", gotMethod, gotPath)
	}
	if gotBody["title"] != "Groceries" {
		t.Fatalf("body: %+v", gotBody)
	}
	if _, ok := gotBody["content"]; ok {
		t.Fatalf("sparse update carried content: %+v", gotBody)
	}
}

func TestClientDelete(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", logger.Nop())
	if err := c.Delete(context.Background(), "note-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if gotMethod != http.MethodDelete || gotPath != "/v1/api/notes/note-1" {
		t.Fatalf("request: %s %s", gotMethod, gotPath)
	}
}

func TestClientDeleteBadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", logger.Nop())
	if err := c.Delete(context.Background(), "missing"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSubscribeURL(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		base  string
		token string
		want  string
	}{
		"http to ws": {
			base:  "http://localhost:6474",
			token: "tok",
			want:  "ws://localhost:6474/v1/api/notes/subscribe?token=tok",
		},
		"https to wss": {
			base:  "https://notes.example.com",
			token: "tok",
			want:  "wss://notes.example.com/v1/api/notes/subscribe?token=tok",
		},
		"no token": {
			base: "http://localhost:6474",
			want: "ws://localhost:6474/v1/api/notes/subscribe",
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := NewClient(tc.base, tc.token, logger.Nop())
			got, err := c.subscribeURL()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
