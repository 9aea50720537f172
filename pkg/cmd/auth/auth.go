package auth

import (
	"github.com/spf13/cobra"

	"github.com/jotlabs/jot/internal/state"
	"github.com/jotlabs/jot/pkg/cmd/auth/login"
	"github.com/jotlabs/jot/pkg/cmd/auth/logout"
)

func NewCmdAuth(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"a"},
		Short:   "Authenticate to the note service.",
	}

	cmd.AddCommand(login.NewCmdLogin(s))
	cmd.AddCommand(logout.NewCmdLogout(s))

	return cmd
}
