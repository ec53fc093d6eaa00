package commands

import (
	"fmt"
	"strconv"
	"strings"

	"portfolio-admin/internal/admin"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <family>",
	Short: "Fetch and display a resource family",
	Long: `Fetches the family and prints it. Percentage families (skills,
strength) also get a bar chart, re-derived from the local mirror after
every change.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := controllerFor(args[0])
		if err != nil {
			return err
		}

		// the printed view is a pure derivation of the mirror
		ctrl.Subscribe(func() { printFamily(ctrl) })

		return ctrl.Load(cmd.Context())
	},
}

func printFamily(c *admin.Controller) {
	schema := c.Schema()

	if schema.Shape == admin.Singleton {
		item := c.Single()
		if item == nil {
			fmt.Println("(not set yet)")
			return
		}
		for _, f := range schema.Fields {
			fmt.Printf("%-14s %s\n", f.Name+":", item.Get(f.Name))
		}
		return
	}

	items := c.Items()
	if len(items) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, item := range items {
		parts := make([]string, 0, len(schema.Fields))
		for _, f := range schema.Fields {
			if v := item.Get(f.Name); v != "" {
				parts = append(parts, fmt.Sprintf("%s=%s", f.Name, v))
			}
		}
		fmt.Printf("%s  %s\n", item.ID(), strings.Join(parts, "  "))
	}

	if isChartFamily(schema) {
		fmt.Println()
		printChart(items)
	}
}

func isChartFamily(schema admin.Schema) bool {
	for _, f := range schema.Fields {
		if f.Name == "percentage" && f.Kind == admin.KindNumber {
			return true
		}
	}
	return false
}

// printChart renders the percentage bars the dashboard drew as a chart.
func printChart(items []admin.Item) {
	width := 0
	for _, item := range items {
		if l := len(item.Get("name")); l > width {
			width = l
		}
	}
	for _, item := range items {
		pct, _ := strconv.Atoi(item.Get("percentage"))
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		fmt.Printf("%-*s  %-20s %3d%%\n", width, item.Get("name"), strings.Repeat("#", pct/5), pct)
	}
}
