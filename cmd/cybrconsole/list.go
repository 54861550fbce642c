package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered workflows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, catalog, err := state.newManager()
		if err != nil {
			return err
		}

		if showActions, _ := cmd.Flags().GetBool("actions"); showActions {
			var rows [][]string
			for _, n := range catalog.Names() {
				rows = append(rows, []string{n})
			}
			state.console.Table("Actions", []string{"Name"}, rows)
			return nil
		}

		var rows [][]string
		for _, name := range m.Names() {
			wf, _ := m.Get(name)
			actions := 0
			for _, p := range wf.Phases() {
				actions += len(p.Actions())
			}
			rows = append(rows, []string{name, strconv.Itoa(len(wf.Phases())), strconv.Itoa(actions)})
		}
		state.console.Table("Workflows", []string{"Name", "Phases", "Actions"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("actions", false, "list the action catalog instead")
}
