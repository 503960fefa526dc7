package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail    string
	loginPassword string

	registerName     string
	registerEmail    string
	registerPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the paperchat backend",
	Long: `Log in with your account credentials and persist the session locally.

Prompts for anything not supplied via flags; the password prompt does
not echo.`,
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new paperchat account.

Registration does not log you in; run 'paperchat login' afterwards.`,
	RunE: runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted if omitted)")

	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "account password (prompted if omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	email, err := promptIfEmpty(cmd, loginEmail, "Email: ")
	if err != nil {
		return err
	}
	password, err := promptPasswordIfEmpty(cmd, loginPassword, "Password: ")
	if err != nil {
		return err
	}

	session, err := authService.Login(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Printf("Logged in as %s <%s>\n", session.User.Name, session.User.Email)
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	name, err := promptIfEmpty(cmd, registerName, "Name: ")
	if err != nil {
		return err
	}
	email, err := promptIfEmpty(cmd, registerEmail, "Email: ")
	if err != nil {
		return err
	}
	password, err := promptPasswordIfEmpty(cmd, registerPassword, "Password: ")
	if err != nil {
		return err
	}

	if err := authService.Register(cmd.Context(), name, email, password); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	cmd.Println("Account created. Run 'paperchat login' to sign in.")
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	if err := authService.Logout(cmd.Context()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	cmd.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	session, err := authService.Session(cmd.Context())
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}

	cmd.Printf("%s <%s>\n", session.User.Name, session.User.Email)
	return nil
}

// promptIfEmpty returns value, or reads one line from stdin.
func promptIfEmpty(cmd *cobra.Command, value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}

	cmd.Print(prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPasswordIfEmpty returns value, or reads a password without
// echoing. Falls back to a plain line read when stdin is not a
// terminal (tests, pipes).
func promptPasswordIfEmpty(cmd *cobra.Command, value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptIfEmpty(cmd, "", prompt)
	}

	cmd.Print(prompt)
	raw, err := term.ReadPassword(fd)
	cmd.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}
