package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agrocraft-dev/agrocraft-go/internal/config"
	"github.com/agrocraft-dev/agrocraft-go/internal/session"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client/api"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Missing credentials never reach the server.
			if email == "" || password == "" {
				return fmt.Errorf("both --email and --password are required")
			}

			_, store, clients, err := setup()
			if err != nil {
				return err
			}

			login, err := clients.Auth.Login(cmd.Context(), &api.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			role, err := session.ParseRole(login.Role)
			if err != nil {
				return fmt.Errorf("server returned an unusable role: %w", err)
			}
			if err := session.Begin(store, login.UserID, role, sessionTTL); err != nil {
				return err
			}

			cmd.Println(config.BoldGreen("Logged in as %s (%s)", email, role))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Get()
			if err != nil {
				return err
			}
			store := openStore(cfg)
			session.End(store)
			cmd.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Get()
			if err != nil {
				return err
			}
			sess, err := requireLogin(openStore(cfg))
			if err != nil {
				return err
			}
			cmd.Printf("User ID: %s\nRole:    %s\n", sess.UserID, sess.Role)
			return nil
		},
	}
}
