package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repomarket/repomarket/internal/core/domain"
)

func newProfileCmd() *cobra.Command {
	var name, organization, phone string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the authenticated user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			var user domain.User
			body := map[string]string{
				"name":         name,
				"organization": organization,
				"phoneNumber":  phone,
			}
			if err := app.client.Put(cmd.Context(), "/api/users/me", body, &user); err != nil {
				return err
			}
			return printJSON(user)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&organization, "organization", "", "organization")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}

func newUsersCmd() *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "Administer accounts (admin only)",
	}

	users.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			var all []domain.User
			if err := app.client.Get(cmd.Context(), "/api/admin/users", &all); err != nil {
				return err
			}
			return printJSON(all)
		},
	})

	var active bool
	setStatus := &cobra.Command{
		Use:   "set-status <user-id>",
		Short: "Activate or deactivate an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			var user domain.User
			body := map[string]bool{"status": active}
			path := fmt.Sprintf("/api/admin/users/%s/status", args[0])
			if err := app.client.Patch(cmd.Context(), path, body, &user); err != nil {
				return err
			}
			return printJSON(user)
		},
	}
	setStatus.Flags().BoolVar(&active, "active", true, "desired active state")
	users.AddCommand(setStatus)

	return users
}
