package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repomarket/repomarket/internal/core/domain"
	"github.com/repomarket/repomarket/internal/guard"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			user, err := app.client.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
}

func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the current bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			tok := app.manager.Token()
			if tok == "" {
				return fmt.Errorf("not logged in")
			}
			fmt.Println(tok)
			return nil
		},
	}
}

// open evaluates the route guard for a role-gated dashboard, the way the web
// client would on navigation, and reports the outcome.
func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <admin|developer|buyer>",
		Short: "Check access to a role-gated dashboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			required, ok := domain.ParseRole(args[0])
			if !ok {
				return fmt.Errorf("unknown role %q", args[0])
			}

			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			decision := guard.Evaluate(required, app.manager.Session(), app.nav)
			switch decision.Action {
			case guard.Render:
				fmt.Printf("Access granted to the %s dashboard\n", strings.ToLower(required.String()))
			case guard.Loading:
				fmt.Println("Session still loading")
			case guard.Redirect:
				fmt.Printf("Redirected to %s\n", decision.Target)
			}
			return nil
		},
	}
}
