package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agrocraft-dev/agrocraft-go/internal/config"
	"github.com/agrocraft-dev/agrocraft-go/pkg/client"
)

func newRegisterCmd() *cobra.Command {
	var name, email, password, role, phone, photoPath string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" || password == "" || role == "" {
				return fmt.Errorf("--name, --email, --password and --role are required")
			}

			_, _, clients, err := setup()
			if err != nil {
				return err
			}

			form := client.NewForm().
				Set("name", name).
				Set("email", email).
				Set("password", password).
				Set("role", role)
			if phone != "" {
				form.Set("phone", phone)
			}
			if photoPath != "" {
				photo, err := os.Open(photoPath)
				if err != nil {
					return fmt.Errorf("failed to open photo: %w", err)
				}
				defer photo.Close()
				form.AddFile("photo", filepath.Base(photoPath), photo)
			}

			status, err := clients.Auth.Register(cmd.Context(), form)
			if err != nil {
				return err
			}
			cmd.Println(config.BoldGreen("Registered."))
			if status.Message != "" {
				cmd.Println(status.Message)
			}
			cmd.Println("Check your email for the verification OTP, then run 'agrocraft verify'.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	cmd.Flags().StringVar(&role, "role", "", "Account role (Farmer, Staff or Customer)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&photoPath, "photo", "", "Path to a profile photo")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var email, otp string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a new account with the emailed OTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || otp == "" {
				return fmt.Errorf("--email and --otp are required")
			}

			_, _, clients, err := setup()
			if err != nil {
				return err
			}

			if _, err := clients.Auth.Verify(cmd.Context(), email, otp); err != nil {
				return err
			}
			cmd.Println(config.BoldGreen("Account verified, you can log in now."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	cmd.Flags().StringVar(&otp, "otp", "", "One-time password from the verification email")
	return cmd
}
