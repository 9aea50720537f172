package search

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/jotlabs/jot/internal/remote"
	"github.com/jotlabs/jot/internal/search"
	"github.com/jotlabs/jot/internal/state"
	"github.com/jotlabs/jot/utils"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	var scopeFlag string

	cmd := &cobra.Command{
		Use:     "search [term]",
		Aliases: []string{"s", "find"},
		Short:   "Search your notes.",
		Long: heredoc.Doc(`
			Case-insensitive substring search over the remote collection. Matches
			keep the collection's order, most recently edited first. With no term,
			every note is listed.
		`),
		Example: heredoc.Doc(`
			jot search shop
			jot search meeting --scope title
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s, scopeFlag)
		},
	}

	cmd.Flags().
		StringVarP(
			&scopeFlag,
			"scope",
			"S",
			"",
			"Fields to match: title, content, or title+content (default from config)",
		)

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State, scopeFlag string) error {
	if scopeFlag == "" {
		scopeFlag = s.Config.Search.Scope
	}
	scope, err := search.ParseScope(scopeFlag)
	if err != nil {
		return err
	}

	notes, err := remote.FetchSnapshot(context.Background(), s.Store)
	if err != nil {
		return fmt.Errorf("failed to fetch notes: %w", err)
	}

	term := ""
	if len(args) > 0 {
		term = args[0]
	}

	matched := search.Filter(notes, term, scope)
	if len(matched) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for _, n := range matched {
		fmt.Printf("%s  %s\n", n.DisplayTitle(), utils.Snippet(n.Content, 60))
	}
	return nil
}
