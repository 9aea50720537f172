// Package search derives the visible subset of the mirrored collection and
// tracks recent search terms.
package search

import (
	"fmt"
	"strings"

	"github.com/jotlabs/jot/internal/note"
)

// Scope selects which note fields participate in a match.
type Scope int

const (
	// ScopeAll matches when either the title or the content matches.
	ScopeAll Scope = iota
	ScopeTitle
	ScopeContent
)

func (s Scope) String() string {
	switch s {
	case ScopeTitle:
		return "title"
	case ScopeContent:
		return "content"
	default:
		return "title+content"
	}
}

// ParseScope resolves a configured scope name. "all" is accepted as an alias
// for "title+content".
func ParseScope(raw string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all", "title+content", "both":
		return ScopeAll, nil
	case "title":
		return ScopeTitle, nil
	case "content":
		return ScopeContent, nil
	}
	return ScopeAll, fmt.Errorf("invalid scope: %q. Please choose 'title', 'content', or 'all'.", raw)
}

// Next cycles through the scopes in a fixed order.
func (s Scope) Next() Scope {
	switch s {
	case ScopeAll:
		return ScopeTitle
	case ScopeTitle:
		return ScopeContent
	default:
		return ScopeAll
	}
}

// Session is the in-memory search state for one client session: the active
// term, the field scope, and the recency list. It is owned by the caller and
// passed explicitly to the filtering function; nothing here is persisted.
type Session struct {
	Query   string
	Scope   Scope
	history *History
}

func NewSession(scope Scope) *Session {
	return &Session{Scope: scope, history: NewHistory(HistoryLimit)}
}

// Submit trims the raw query. Empty after trimming clears the active filter;
// anything else becomes the active term and moves to the front of the
// recency list.
func (s *Session) Submit(raw string) {
	term := strings.TrimSpace(raw)
	s.Query = term
	if term == "" {
		return
	}
	s.history.Push(term)
}

// PickRecent activates a past term and returns the value the live input
// buffer should show.
func (s *Session) PickRecent(term string) string {
	s.Submit(term)
	return s.Query
}

// RemoveRecent drops a single term from the recency list without touching
// the active filter or the input buffer.
func (s *Session) RemoveRecent(term string) {
	s.history.Remove(term)
}

// Recent returns the recency list, most recent first.
func (s *Session) Recent() []string {
	return s.history.Terms()
}

// Filter applies the session's term and scope to the mirror.
func (s *Session) Filter(mirror []note.Note) []note.Note {
	return Filter(mirror, s.Query, s.Scope)
}

// Filter returns the mirror entries matching term under scope, preserving
// mirror order. Matching is case-insensitive and purely substring based; an
// empty term is the identity.
func Filter(mirror []note.Note, term string, scope Scope) []note.Note {
	term = strings.TrimSpace(term)
	if term == "" {
		return mirror
	}

	lowered := strings.ToLower(term)
	matched := make([]note.Note, 0, len(mirror))
	for _, n := range mirror {
		if matches(n, lowered, scope) {
			matched = append(matched, n)
		}
	}
	return matched
}

func matches(n note.Note, lowered string, scope Scope) bool {
	inTitle := strings.Contains(strings.ToLower(n.Title), lowered)
	inContent := strings.Contains(strings.ToLower(n.Content), lowered)

	switch scope {
	case ScopeTitle:
		return inTitle
	case ScopeContent:
		return inContent
	default:
		return inTitle || inContent
	}
}
