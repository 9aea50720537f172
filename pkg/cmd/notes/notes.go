package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/jotlabs/jot/internal/state"
	"github.com/jotlabs/jot/tui/notes"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"n"},
		Short:   "Browse and edit your notes.",
		Long: heredoc.Doc(`
			Launch the realtime notes interface. The list mirrors the remote
			collection, most recently edited first, and stays live while other
			sessions make changes. Search with /, cycle the match scope with s,
			and pick past searches with r.
		`),
		Example: heredoc.Doc(`
			jot notes
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return notes.Run(s)
		},
	}

	return cmd
}
