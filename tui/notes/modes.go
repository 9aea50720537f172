package notes

import (
	"github.com/jotlabs/jot/internal/auth"
	"github.com/jotlabs/jot/internal/note"
)

// mode names the input target; exactly one is active at a time.
type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeEditTitle
	modeEditContent
	modeRecent
	modeConfirmDelete
)

// snapshotMsg carries a full collection replacement pushed by the store.
type snapshotMsg []note.Note

// identityMsg carries an identity-change push from the auth provider.
type identityMsg struct {
	identity auth.Identity
	signedIn bool
}
