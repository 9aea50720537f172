package root

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jotlabs/jot/internal/state"
	"github.com/jotlabs/jot/pkg/cmd/auth"
	"github.com/jotlabs/jot/pkg/cmd/auth/login"
	"github.com/jotlabs/jot/pkg/cmd/auth/logout"
	"github.com/jotlabs/jot/pkg/cmd/new"
	"github.com/jotlabs/jot/pkg/cmd/notes"
	"github.com/jotlabs/jot/pkg/cmd/rm"
	"github.com/jotlabs/jot/pkg/cmd/search"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "jot",
		Short: "Realtime notes in your terminal.",
		Long: `A terminal client for your notes. The list stays live against the
server while you browse, edit, and search.

  jot            launch the notes interface
  jot new lunch  create a note titled "lunch"
  jot search go  find notes mentioning "go"
  `,
		// Running without a subcommand drops straight into the notes TUI.
		RunE: notes.NewCmdNotes(s).RunE,
	}

	cmd.PersistentFlags().
		StringP(
			"server",
			"u",
			s.Config.ServerURL,
			"Base URL of the note service.",
		)
	viper.BindPFlag("serverurl", cmd.PersistentFlags().Lookup("server"))

	cmd.AddCommand(
		auth.NewCmdAuth(s),
		login.NewCmdLogin(s),
		logout.NewCmdLogout(s),
		new.NewCmdNew(s),
		rm.NewCmdRm(s),
		search.NewCmdSearch(s),
		notes.NewCmdNotes(s),
	)

	return cmd, nil
}
