// Package cli implements the repomarket command line front end. It is the
// "UI layer" of the client core: commands observe the session manager, issue
// requests through the HTTP client, and report the route guard's decisions.
package cli

import "github.com/spf13/cobra"

// NewRootCmd creates the root cobra command for the repomarket CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "repomarket",
		Short:         "RepoMarket marketplace client",
		Long:          "repomarket manages your RepoMarket session and talks to the backend API.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newSignupCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newTokenCmd(),
		newOpenCmd(),
		newProfileCmd(),
		newUsersCmd(),
	)

	return root
}
