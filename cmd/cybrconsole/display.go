package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"cybrconsole/internal/tui"
)

var tableCmd = &cobra.Command{
	Use:   "table [file]",
	Short: "Render a YAML or JSON list of records as a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := tui.LoadDocument(args[0])
		if err != nil {
			return err
		}
		header, rows, err := tui.RowsFromDocument(doc)
		if err != nil {
			return err
		}
		state.console.Table(titleFor(cmd, args[0]), header, rows)
		return nil
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Render a YAML or JSON document as a tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := tui.LoadDocument(args[0])
		if err != nil {
			return err
		}
		state.console.Tree(titleFor(cmd, args[0]), doc)
		return nil
	},
}

func titleFor(cmd *cobra.Command, path string) string {
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		return title
	}
	return filepath.Base(path)
}

func init() {
	rootCmd.AddCommand(tableCmd, treeCmd)
	tableCmd.Flags().StringP("title", "t", "", "title shown above the table (default: file name)")
	treeCmd.Flags().StringP("title", "t", "", "root label of the tree (default: file name)")
}
