package sync

import "github.com/jotlabs/jot/internal/note"

// Draft is the per-field edit buffer for the selected note. It is committed
// only on blur, never per keystroke, bounding remote writes to one per
// field-edit session. base holds the last-synced copy the suppression rule
// compares against.
type Draft struct {
	ID      string
	Title   string
	Content string

	base note.Note
}

func NewDraft(n note.Note) Draft {
	return Draft{
		ID:      n.ID,
		Title:   n.Title,
		Content: n.Content,
		base:    n,
	}
}

// Base is the last-synced note backing this draft.
func (d Draft) Base() note.Note {
	return d.base
}
