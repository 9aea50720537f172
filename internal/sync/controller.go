// Package sync owns the local mirror of the remote note collection and the
// single selected-note slot, keeping both consistent across snapshot pushes
// and local edit actions.
package sync

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jotlabs/jot/internal/note"
	"github.com/jotlabs/jot/internal/remote"
)

// Controller reconciles incoming snapshots against in-flight local edits and
// the current selection. All methods run on the caller's event loop; the
// mirror slice is replaced wholesale on every snapshot, never mutated in
// place.
type Controller struct {
	store remote.Store
	now   func() string
	log   *zap.SugaredLogger

	mirror   []note.Note
	selected *note.Note
	draft    Draft

	// pending holds the id of an optimistically inserted note until the
	// first snapshot containing it arrives.
	pending string
}

func NewController(store remote.Store, log *zap.SugaredLogger) *Controller {
	return &Controller{store: store, now: note.Now, log: log}
}

// Mirror is the local copy of the remote collection, authoritative only
// until the next snapshot.
func (c *Controller) Mirror() []note.Note {
	return c.mirror
}

// Selected returns the current working copy, if any.
func (c *Controller) Selected() (note.Note, bool) {
	if c.selected == nil {
		return note.Note{}, false
	}
	return *c.selected, true
}

// Draft exposes the per-field edit buffer for the selected note.
func (c *Controller) Draft() Draft {
	return c.draft
}

// ApplySnapshot replaces the mirror with the pushed ordered sequence and
// reconciles selection: a still-present selected id picks up the fresh copy,
// a vanished one falls back to the first entry, an empty sequence clears
// selection. A pending optimistic create is resolved the first time its id
// appears.
func (c *Controller) ApplySnapshot(notes []note.Note) {
	c.mirror = notes

	if c.pending != "" {
		if _, ok := findByID(notes, c.pending); ok {
			c.pending = ""
		}
	}

	if c.selected != nil {
		if fresh, ok := findByID(notes, c.selected.ID); ok {
			c.setSelected(fresh)
			return
		}
	}

	if len(notes) > 0 {
		c.setSelected(notes[0])
		return
	}

	c.selected = nil
	c.draft = Draft{}
}

// Select makes the given note the working copy. This is an explicit user
// action and wins immediately; the note is already in the mirror so no
// round-trip is needed.
func (c *Controller) Select(n note.Note) {
	c.setSelected(n)
}

// SetDraftTitle records in-progress typing without committing it.
func (c *Controller) SetDraftTitle(title string) {
	c.draft.Title = title
}

// SetDraftContent records in-progress typing without committing it.
func (c *Controller) SetDraftContent(content string) {
	c.draft.Content = content
}

// CommitTitle runs the blur-commit for the title field: the trimmed-empty
// value collapses to the placeholder, and the write is suppressed when the
// result equals the last-synced title. A failed write surfaces an error and
// leaves the draft untouched.
func (c *Controller) CommitTitle(ctx context.Context) error {
	if c.selected == nil {
		return nil
	}

	title := note.CollapseTitle(c.draft.Title)
	c.draft.Title = title
	if title == c.draft.base.Title {
		return nil
	}

	return c.commit(ctx, note.Fields{"title": title})
}

// CommitContent runs the blur-commit for the content field with the same
// suppression rule as CommitTitle.
func (c *Controller) CommitContent(ctx context.Context) error {
	if c.selected == nil {
		return nil
	}

	if c.draft.Content == c.draft.base.Content {
		return nil
	}

	return c.commit(ctx, note.Fields{"content": c.draft.Content})
}

// Create writes a note with default fields and immediately selects a locally
// constructed copy carrying the store-assigned id. The next snapshot
// containing that id supersedes the copy without flicker, since the two
// representations are field-identical at that instant.
func (c *Controller) Create(ctx context.Context) (note.Note, error) {
	ts := c.now()
	fields := note.Fields{
		"title":     note.DefaultTitle,
		"content":   "",
		"createdAt": ts,
		"updatedAt": ts,
	}

	id, err := c.store.Create(ctx, fields)
	if err != nil {
		c.log.Errorf("create failed: %v", err)
		return note.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	n := note.Note{
		ID:        id,
		Title:     note.DefaultTitle,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	c.pending = id
	fresh := make([]note.Note, 0, len(c.mirror)+1)
	fresh = append(fresh, n)
	fresh = append(fresh, c.mirror...)
	c.mirror = fresh
	c.setSelected(n)

	return n, nil
}

// Delete issues the remote delete. Confirmation is the caller's concern; the
// mirror is left unchanged either way and the subsequent snapshot removes
// the entry and re-runs selection fallback.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		c.log.Errorf("delete %s failed: %v", id, err)
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func (c *Controller) commit(ctx context.Context, fields note.Fields) error {
	fields["updatedAt"] = c.now()
	if err := c.store.Update(ctx, c.selected.ID, fields); err != nil {
		c.log.Errorf("update %s failed: %v", c.selected.ID, err)
		return fmt.Errorf("failed to save note: %w", err)
	}
	return nil
}

// setSelected installs a detached copy as the working note. The draft is
// reinitialized only when the identity or any persisted field changed, so
// unsaved keystrokes survive snapshots that did not touch the selected note.
func (c *Controller) setSelected(n note.Note) {
	copied := n
	c.selected = &copied

	if c.draft.ID != n.ID || !c.draft.base.SameFields(n) {
		c.draft = NewDraft(n)
	}
}

func findByID(notes []note.Note, id string) (note.Note, bool) {
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return note.Note{}, false
}
