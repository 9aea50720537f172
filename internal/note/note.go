// Package note defines the note entity mirrored from the remote collection.
package note

import "strings"

// DefaultTitle replaces a trimmed-empty title when an edit is committed.
const DefaultTitle = "Untitled"

// Note is the sole persisted entity. The remote store assigns IDs and keeps
// the collection ordered by UpdatedAt descending; local code never reorders.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	// Style attributes are presentation-only and default when absent.
	TitleBold  bool   `json:"titleBold,omitempty"`
	TitleSize  int    `json:"titleSize,omitempty"`
	TitleColor string `json:"titleColor,omitempty"`
}

// Fields is a sparse field set sent on creates and partial updates.
type Fields map[string]any

// CollapseTitle applies the blur-commit rule: a trimmed-empty title becomes
// the placeholder, anything else is kept as typed.
func CollapseTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return DefaultTitle
	}
	return title
}

// DisplayTitle is the title as rendered, never empty.
func (n Note) DisplayTitle() string {
	return CollapseTitle(n.Title)
}

// SameFields reports whether all persisted fields match. Used to decide
// whether a selected note changed remotely and the draft must reinitialize.
func (n Note) SameFields(other Note) bool {
	return n.ID == other.ID &&
		n.Title == other.Title &&
		n.Content == other.Content &&
		n.CreatedAt == other.CreatedAt &&
		n.UpdatedAt == other.UpdatedAt &&
		n.TitleBold == other.TitleBold &&
		n.TitleSize == other.TitleSize &&
		n.TitleColor == other.TitleColor
}
