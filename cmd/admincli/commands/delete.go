package commands

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <family> <id>",
	Short: "Delete an item after confirmation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controllerFor(args[0])
		if err != nil {
			return err
		}

		if err := ctrl.Load(cmd.Context()); err != nil {
			return err
		}
		return ctrl.Remove(cmd.Context(), args[1])
	},
}
