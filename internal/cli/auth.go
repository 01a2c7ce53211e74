package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repomarket/repomarket/internal/core/domain"
	"github.com/repomarket/repomarket/internal/session"
)

func newLoginCmd() *cobra.Command {
	var email, password, role string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the RepoMarket backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = prompt("Password: "); err != nil {
					return err
				}
			}

			user, err := app.manager.Login(cmd.Context(), email, password, domain.Role(strings.ToUpper(role)))
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")
	cmd.Flags().StringVar(&role, "role", "", "role hint: admin, developer or buyer")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var email, password, name, role, organization, phone string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = prompt("Password: "); err != nil {
					return err
				}
			}

			user, err := app.manager.Register(cmd.Context(), domain.Registration{
				Email:        email,
				Password:     password,
				Name:         name,
				Role:         domain.Role(strings.ToUpper(role)),
				Organization: organization,
				PhoneNumber:  phone,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", "", "role: admin, developer or buyer")
	cmd.Flags().StringVar(&organization, "organization", "", "organization (required for buyers)")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

// signup mirrors the sign-up page's field set: it collects a company name,
// which the session manager maps onto the organization field.
func newSignupCmd() *cobra.Command {
	var email, password, name, role, companyName, phone string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account (sign-up form variant)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = prompt("Password: "); err != nil {
					return err
				}
			}

			err = app.manager.SignUp(cmd.Context(), session.SignUpData{
				Name:        name,
				Email:       email,
				Password:    password,
				Role:        domain.Role(strings.ToUpper(role)),
				CompanyName: companyName,
				PhoneNumber: phone,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Signed up %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", "", "role: admin, developer or buyer")
	cmd.Flags().StringVar(&companyName, "company-name", "", "company name (required for buyers)")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := app.manager.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
