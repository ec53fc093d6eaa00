package commands

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"portfolio-admin/internal/admin"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in and store the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, "Password: ")
		pw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}
		if len(pw) == 0 {
			return errors.New("password must not be empty")
		}

		client := admin.NewClient(serverURL, "")
		tok, err := client.Login(cmd.Context(), args[0], string(pw))
		if err != nil {
			return err
		}

		store, err := tokenStore()
		if err != nil {
			return err
		}
		if err := store.Save(tok); err != nil {
			return err
		}
		fmt.Println("Logged in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := tokenStore()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}
