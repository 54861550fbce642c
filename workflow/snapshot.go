package workflow

// Snapshot is a point-in-time view of a workflow's statuses.
type Snapshot struct {
	Workflow string          `json:"workflow"`
	Phases   []PhaseSnapshot `json:"phases"`
}

type PhaseSnapshot struct {
	Title   string           `json:"title"`
	Status  Status           `json:"status"`
	Actions []ActionSnapshot `json:"actions"`
}

type ActionSnapshot struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// Snapshot reads the current statuses. It is safe to call while the
// workflow is running, provided assembly has finished.
func (w *Workflow) Snapshot() Snapshot {
	s := Snapshot{Workflow: w.name, Phases: make([]PhaseSnapshot, 0, len(w.phases))}
	for _, p := range w.phases {
		ps := PhaseSnapshot{Title: p.title, Status: p.Status(), Actions: make([]ActionSnapshot, 0, len(p.actions))}
		for _, a := range p.actions {
			ps.Actions = append(ps.Actions, ActionSnapshot{Name: a.name, Status: a.Status()})
		}
		s.Phases = append(s.Phases, ps)
	}
	return s
}

// Completed reports whether every phase finished successfully.
func (s Snapshot) Completed() bool {
	for _, p := range s.Phases {
		if p.Status != StatusCompleted {
			return false
		}
	}
	return true
}
