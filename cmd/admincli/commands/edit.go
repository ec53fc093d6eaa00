package commands

import (
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <family> [name=value|name=@file]...",
	Short: "Create a new item",
	Long: `Creates a new item from name=value pairs. A value of @path stages a
local file for upload. For singleton families this sets the record.

Examples:
  admincli add skills name=Sculpting percentage=85
  admincli add scripts title="Episode 1" description="..." image=@cover.png pdf=@ep1.pdf
  admincli add images images=@a.png images=@b.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controllerFor(args[0])
		if err != nil {
			return err
		}

		ctrl.BeginCreate()
		if err := applyArgs(ctrl, args[1:]); err != nil {
			return err
		}
		return ctrl.Submit(cmd.Context())
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <family> <id> [name=value|name=@file]...",
	Short: "Update an existing item",
	Long: `Loads the family, copies the item's current values into the draft,
applies the given changes and submits. File fields keep their stored files
unless a replacement is staged. For singleton families pass "-" as the id.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controllerFor(args[0])
		if err != nil {
			return err
		}

		if err := ctrl.Load(cmd.Context()); err != nil {
			return err
		}

		id := args[1]
		if id == "-" {
			id = ""
		}
		if err := ctrl.BeginEdit(id); err != nil {
			return err
		}
		if err := applyArgs(ctrl, args[2:]); err != nil {
			return err
		}
		return ctrl.Submit(cmd.Context())
	},
}
