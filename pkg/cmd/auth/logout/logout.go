package logout

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/jotlabs/jot/internal/state"
)

func NewCmdLogout(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out of your account",
		Long: heredoc.Doc(`
			End the current session. The server is told to revoke the token and the
			local copy is cleared either way.
		`),
		Example: heredoc.Doc(`
			jot auth logout
			jot logout
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.Auth.SignOut(context.Background()); err != nil {
				return err
			}
			fmt.Println("Successfully logged out.")
			return nil
		},
	}

	return cmd
}
