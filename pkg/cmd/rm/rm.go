package rm

import (
	"context"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/jotlabs/jot/internal/note"
	"github.com/jotlabs/jot/internal/remote"
	"github.com/jotlabs/jot/internal/state"
	"github.com/jotlabs/jot/utils"
)

func NewCmdRm(s *state.State) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm [query]",
		Aliases: []string{"delete"},
		Short:   "Delete a note.",
		Long: heredoc.Doc(`
			Pick a note with the fuzzy finder and delete it from the server.
			An optional query pre-fills the finder. Deletion asks for
			confirmation unless --force is given.
		`),
		Example: heredoc.Doc(`
			jot rm
			jot rm groceries --force
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return run(cmd, s, query, force)
		},
	}

	cmd.Flags().
		BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, query string, force bool) error {
	notes, err := remote.FetchSnapshot(context.Background(), s.Store)
	if err != nil {
		return fmt.Errorf("failed to fetch notes: %w", err)
	}
	if len(notes) == 0 {
		fmt.Println("No notes to delete.")
		return nil
	}

	idx, err := pick(notes, query)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Println("No note selected.")
			return nil
		}
		return err
	}
	target := notes[idx]

	if !force {
		ok, err := confirm(target)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Deletion cancelled.")
			return nil
		}
	}

	if err := s.Store.Delete(context.Background(), target.ID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	fmt.Printf("Deleted %q\n", target.DisplayTitle())
	return nil
}

func pick(notes []note.Note, query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return utils.RenderMarkdownPreview(notes[i].Content, w/2)
		}),
		fuzzyfinder.WithHeader("Select a note to delete"),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	return fuzzyfinder.Find(
		notes,
		func(i int) string {
			return notes[i].DisplayTitle()
		},
		options...,
	)
}

func confirm(n note.Note) (bool, error) {
	input := confirmation.New(
		fmt.Sprintf("Delete %q?", n.DisplayTitle()),
		confirmation.No,
	)
	return input.RunPrompt()
}
