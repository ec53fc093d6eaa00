// Package commands implements the admin CLI. Every content screen of the
// dashboard maps to a family name here; the commands only add presentation
// on top of the shared editor controller.
package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"portfolio-admin/internal/admin"
	"portfolio-admin/internal/admin/token"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	tokenFile string
	assumeYes bool
)

var Root = &cobra.Command{
	Use:   "admincli",
	Short: "Manage portfolio content from the terminal",
	Long: `admincli edits the portfolio site's content over its REST API:
about page, works, scripts, skills and strength charts, education,
experience, competences, contacts, homepage media and the query inbox.

Families: ` + strings.Join(admin.FamilyNames(), ", "),
	SilenceUsage: true,
}

func init() {
	Root.PersistentFlags().StringVar(&serverURL, "server", envOr("SERVER_URL", "http://localhost:8080"), "base URL of the backend")
	Root.PersistentFlags().StringVar(&tokenFile, "token-file", os.Getenv("TOKEN_FILE"), "path of the saved session token")
	Root.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompts")

	Root.AddCommand(loginCmd, logoutCmd, listCmd, addCmd, editCmd, deleteCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func tokenStore() (*token.Store, error) {
	return token.NewStore(tokenFile)
}

func newClient() (*admin.Client, error) {
	store, err := tokenStore()
	if err != nil {
		return nil, err
	}
	tok, err := store.Load()
	if err != nil {
		return nil, err
	}
	return admin.NewClient(serverURL, tok), nil
}

func controllerFor(family string) (*admin.Controller, error) {
	schema, ok := admin.Families[family]
	if !ok {
		return nil, fmt.Errorf("unknown family %q (known: %s)", family, strings.Join(admin.FamilyNames(), ", "))
	}
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return admin.NewController(schema, client, termNotifier{}, promptConfirmer{}), nil
}

// termNotifier prints the feedback the dashboard showed as toasts.
type termNotifier struct{}

func (termNotifier) Success(msg string) { fmt.Println(msg) }
func (termNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, msg) }

// promptConfirmer asks on stdin; --yes answers for the user.
type promptConfirmer struct{}

func (promptConfirmer) Confirm(title, text string) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s %s [y/N]: ", title, text)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// applyArgs feeds name=value pairs into the draft; a value of the form
// @path stages a local file.
func applyArgs(c *admin.Controller, args []string) error {
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected name=value, got %q", arg)
		}
		if strings.HasPrefix(value, "@") {
			if err := c.StageFile(name, strings.TrimPrefix(value, "@")); err != nil {
				return err
			}
			continue
		}
		if err := c.SetField(name, value); err != nil {
			return err
		}
	}
	return nil
}
