package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cybrconsole/actions"
)

const demoTree = `src:
  main.go: null
  utils: [helper.go, config.go]
tests: [main_test.go, utils_test.go]
docs: [README.md, CONTRIBUTING.md]
`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Tour the console: run the example workflow, then prompts, a table and a tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		interactive, _ := cmd.Flags().GetBool("interactive")
		c := state.console

		c.Banner("Welcome to CybrConsole")

		m, _, err := state.newManager()
		if err != nil {
			return err
		}
		if err := m.Run(ctx, actions.ExampleWorkflow); err != nil {
			return fmt.Errorf("workflow %q failed: %w", actions.ExampleWorkflow, err)
		}

		if interactive {
			option, err := c.Select(ctx, "Choose an option:", []string{"Option 1", "Option 2", "Option 3"})
			if err != nil {
				return err
			}
			c.Println("You selected:", option)

			items, err := c.MultiSelect(ctx, "Select items:", []string{"Item 1", "Item 2", "Item 3", "Item 4"})
			if err != nil {
				return err
			}
			c.Println("You selected:", strings.Join(items, ", "))
		}

		c.Table("Sample Data", []string{"Name", "Age", "City"}, [][]string{
			{"Alice", "30", "New York"},
			{"Bob", "25", "Los Angeles"},
			{"Charlie", "35", "Chicago"},
		})

		var tree yaml.Node
		if err := yaml.Unmarshal([]byte(demoTree), &tree); err != nil {
			return err
		}
		c.Tree("Project Structure", &tree)

		if interactive {
			thoughts, err := c.Text(ctx, "Enter your thoughts on CybrConsole:")
			if err != nil {
				return err
			}
			c.Println()
			c.Println("Your input:", thoughts)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Bool("interactive", true, "include the select, checkbox and text prompts")
}
