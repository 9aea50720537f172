package login

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/jotlabs/jot/internal/state"
	"github.com/jotlabs/jot/pkg/cmd/auth/tui"
)

func NewCmdLogin(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		Aliases: []string{"l"},
		Short:   "Log in to your account",
		Long: heredoc.Doc(`
			Log in to the note service with your email and password.
			Upon successful login, your session token is stored in the config file
			and used for every sync and write.
		`),
		Example: heredoc.Doc(`
			jot auth login
			jot login
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, signedIn := s.Auth.Identity(); signedIn {
				fmt.Println(
					"You are already signed in. Run 'jot logout' first if you'd like to change users.",
				)
				return nil
			}
			return tui.Login(s)
		},
	}

	return cmd
}
