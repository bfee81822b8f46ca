package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail    string
	loginPassword string

	signupUsername string
	signupEmail    string
	signupPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE: run(func(ctx context.Context, app *App, _ []string) error {
		email, password, err := credentialPrompt(loginEmail, loginPassword)
		if err != nil {
			return err
		}
		id, err := app.Store.Login(ctx, email, password)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(id)
		}
		fmt.Printf("Logged in as %s (user %s)\n", id.Username, id.ID)
		return nil
	}),
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	RunE: run(func(ctx context.Context, app *App, _ []string) error {
		if signupUsername == "" {
			return fmt.Errorf("--username is required")
		}
		email, password, err := credentialPrompt(signupEmail, signupPassword)
		if err != nil {
			return err
		}
		id, err := app.Store.Signup(ctx, signupUsername, email, password)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(id)
		}
		fmt.Printf("Welcome, %s (user %s)\n", id.Username, id.ID)
		return nil
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: run(func(_ context.Context, app *App, _ []string) error {
		if err := app.Store.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: run(func(_ context.Context, app *App, _ []string) error {
		id, ok := app.Store.Current()
		if !ok {
			fmt.Println("Not logged in")
			return nil
		}
		if flagJSON {
			return printJSON(id)
		}
		fmt.Printf("%s <%s> (user %s)\n", id.Username, id.Email, id.ID)
		return nil
	}),
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	signupCmd.Flags().StringVar(&signupUsername, "username", "", "Display name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Account password (prompted when omitted)")
}

// credentialPrompt fills in whichever of email and password were not given
// as flags, reading the password without echo when stdin is a terminal.
func credentialPrompt(email, password string) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", err
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			raw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return "", "", err
			}
			password = string(raw)
		} else {
			line, err := reader.ReadString('\n')
			if err != nil {
				return "", "", err
			}
			password = strings.TrimSpace(line)
		}
	}
	return email, password, nil
}
