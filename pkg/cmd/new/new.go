package new

import (
	"context"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/jotlabs/jot/internal/note"
	"github.com/jotlabs/jot/internal/state"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:     "new [title]",
		Aliases: []string{"n"},
		Short:   "Create a new note.",
		Long: heredoc.Doc(`
			Create a note on the server. The title is optional; a note created
			without one shows up as "Untitled" until you give it a name.
		`),
		Example: heredoc.Doc(`
			jot new
			jot new groceries
			jot new standup -c "blocked on the deploy"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s, content)
		},
	}

	cmd.Flags().
		StringVarP(&content, "content", "c", "", "Initial content for the note")

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State, content string) error {
	title := note.CollapseTitle(strings.Join(args, " "))
	now := note.Now()

	id, err := s.Store.Create(context.Background(), note.Fields{
		"title":     title,
		"content":   content,
		"createdAt": now,
		"updatedAt": now,
	})
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	fmt.Printf("Created %q (%s)\n", title, id)
	return nil
}
