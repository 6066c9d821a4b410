package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bgshelf/bgshelf/internal/model"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in as the collection owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}

			user, err := authSvc.Login(cmd.Context(), model.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*user)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newSignupCmd() *cobra.Command {
	var email, username, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required")
			}

			user, err := authSvc.Signup(cmd.Context(), model.SignupCredentials{
				Email:    email,
				Username: username,
				Password: password,
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*user)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&username, "username", "", "Display username")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored login",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := authSvc.Logout(); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if refresh {
				user, err := client.Me(cmd.Context())
				if err != nil {
					return err
				}
				NewOutput(cfg.Output).Print(*user)
				return nil
			}

			user := authSvc.CurrentUser()
			if user == nil {
				return model.ErrNotAuthenticated
			}
			NewOutput(cfg.Output).Print(*user)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Fetch the user from the backend instead of the local cache")

	return cmd
}
