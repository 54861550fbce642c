package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cybrconsole/workflow"
)

var runCmd = &cobra.Command{
	Use:   "run [workflow]",
	Short: "Run a workflow by name",
	Long: `Run a registered workflow by name. Without an argument an interactive
picker lists the available workflows.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, _ := cmd.Flags().GetBool("summary")
		asJSON, _ := cmd.Flags().GetBool("json")

		timings := newTimings()
		m, _, err := state.newManager(workflow.WithObserver(timings.observe))
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			name, err = state.console.Select(cmd.Context(), "Select a workflow to run", m.Names())
			if err != nil {
				return err
			}
		}

		runErr := m.Run(cmd.Context(), name)
		if wf, ok := m.Get(name); ok {
			snap := wf.Snapshot()
			switch {
			case asJSON:
				data, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case summary:
				header, rows := summaryRows(snap, timings)
				state.console.Table("Summary: "+name, header, rows)
			}
		}
		if runErr != nil {
			return fmt.Errorf("workflow %q failed: %w", name, runErr)
		}
		return nil
	},
}

// timings records how long each action ran, keyed by its position since
// phase titles and action names may repeat.
type timings struct {
	started  map[[2]int]time.Time
	duration map[[2]int]time.Duration
}

func newTimings() *timings {
	return &timings{
		started:  make(map[[2]int]time.Time),
		duration: make(map[[2]int]time.Duration),
	}
}

func (t *timings) observe(e workflow.Event) {
	key := [2]int{e.PhaseIndex, e.ActionIndex}
	switch e.Type {
	case workflow.EventActionStarted:
		t.started[key] = e.Timestamp
	case workflow.EventActionCompleted, workflow.EventActionFailed:
		if start, ok := t.started[key]; ok {
			t.duration[key] = e.Timestamp.Sub(start)
		}
	}
}

func summaryRows(s workflow.Snapshot, t *timings) ([]string, [][]string) {
	header := []string{"Phase", "Action", "Status", "Duration"}
	var rows [][]string
	for i, p := range s.Phases {
		for j, a := range p.Actions {
			d := "-"
			if v, ok := t.duration[[2]int{i, j}]; ok {
				d = v.Round(10 * time.Millisecond).String()
			}
			rows = append(rows, []string{p.Title, a.Name, a.Status.String(), d})
		}
	}
	return header, rows
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("summary", true, "print a status table after the run")
	runCmd.Flags().Bool("json", false, "print the final statuses as JSON instead of a table")
}
