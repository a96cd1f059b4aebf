package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/session"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication credentials",
	Long: `Manage authentication credentials for the Prospectly backend.

Credentials are stored in ~/.prospectctl/credentials.json and renewed
automatically when the access token expires.

Subcommands:
  register  Register a new user account
  login     Login with email and password
  logout    Logout and remove credentials
  status    Show current authentication status

Examples:
  prospectctl auth login --email user@example.com
  prospectctl auth status
  prospectctl auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the backend",
	Long: `Login to the Prospectly backend with your email and password.

Missing flags are prompted for interactively.

Examples:
  prospectctl auth login --email user@example.com
  prospectctl auth login`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if err := promptCredentials(&email, &password); err != nil {
			return err
		}

		if err := app.sessions.Login(cmd.Context(), session.LoginRequest{
			Email:    email,
			Password: password,
		}); err != nil {
			return err
		}

		fmt.Printf("Logged in as %s\n", email)
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user account",
	Long: `Register a new account on the Prospectly backend and start a session.

Missing flags are prompted for interactively.

Examples:
  prospectctl auth register --email user@example.com --name "Anna Andersson"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		name, _ := cmd.Flags().GetString("name")
		if err := promptCredentials(&email, &password); err != nil {
			return err
		}

		req := session.RegisterRequest{Email: email, Password: password}
		if name != "" {
			req.FullName = &name
		}

		if err := app.sessions.Register(cmd.Context(), req); err != nil {
			return err
		}

		fmt.Printf("Registered and logged in as %s\n", email)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and remove credentials",
	Long: `Logout and remove the stored credentials.

No network call is made; the tokens simply stop being presented.

Examples:
  prospectctl auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		if !app.sessions.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return nil
		}

		if user := app.sessions.CurrentUser(); user != nil {
			fmt.Printf("Logging out: %s\n", user.Email)
		}

		if err := app.sessions.Logout(); err != nil {
			return err
		}

		fmt.Println("Logged out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}

		if !app.sessions.IsAuthenticated() {
			fmt.Println("Not logged in.")
			fmt.Println()
			fmt.Println("Use 'prospectctl auth login' to authenticate.")
			return nil
		}

		user := app.sessions.CurrentUser()
		if user != nil {
			fmt.Printf("Logged in as %s", user.Email)
			if user.FullName != nil && *user.FullName != "" {
				fmt.Printf(" (%s)", *user.FullName)
			}
			fmt.Println()
		} else {
			fmt.Println("Logged in.")
		}
		return nil
	},
}

// promptCredentials asks for whichever of email/password the flags left
// empty.
func promptCredentials(email, password *string) error {
	var fields []huh.Field

	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(email).
			Validate(func(s string) error {
				if !strings.Contains(s, "@") {
					return fmt.Errorf("enter a valid email address")
				}
				return nil
			}))
	}

	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password must not be empty")
				}
				return nil
			}))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password (prompted if omitted)")

	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("password", "", "account password (prompted if omitted)")
	authRegisterCmd.Flags().String("name", "", "full name")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	rootCmd.AddCommand(authCmd)
}
