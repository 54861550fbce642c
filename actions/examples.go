package actions

import (
	"cybrconsole/workflow"
)

const (
	ExampleWorkflow = "Example Workflow"
	VerifyWorkflow  = "Verify Workspace"
)

// ExampleParams are the arguments fed to the builtin workflows.
type ExampleParams struct {
	Workdir   string
	InputFile string
	Email     string
}

// DefineExamples registers the builtin workflows on m.
func DefineExamples(m *workflow.Manager, c *Catalog, p ExampleParams) error {
	example := m.Create(ExampleWorkflow)
	if err := c.AppendSteps(example.AddPhase("Initialization"),
		Step{Label: "Setup environment", Action: SetupEnv},
		Step{Label: "Create directories", Action: CreateDirs, Args: workflow.Args{"path": p.Workdir}},
	); err != nil {
		return err
	}
	if err := c.AppendSteps(example.AddPhase("Processing"),
		Step{Label: "Process data", Action: ProcessData, Args: workflow.Args{"input_file": p.InputFile}},
		Step{Label: "Generate report", Action: GenerateReport},
	); err != nil {
		return err
	}
	if err := c.AppendSteps(example.AddPhase("Finalization"),
		Step{Label: "Cleanup", Action: Cleanup},
		Step{Label: "Send notification", Action: SendNotification, Args: workflow.Args{"email": p.Email}},
	); err != nil {
		return err
	}

	verify := m.Create(VerifyWorkflow)
	if err := c.AppendSteps(verify.AddPhase("Checks"),
		Step{Label: "Check workdir", Action: CheckPath, Args: workflow.Args{"path": p.Workdir}},
	); err != nil {
		return err
	}
	return c.AppendSteps(verify.AddPhase("Teardown"),
		Step{Label: "Remove workdir", Action: Cleanup, Args: workflow.Args{"path": p.Workdir}},
		Step{Label: "Send notification", Action: SendNotification, Args: workflow.Args{"email": p.Email}},
	)
}
