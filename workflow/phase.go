package workflow

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Phase is an ordered group of Actions executed as a unit.
type Phase struct {
	title   string
	actions []*Action
	status  atomic.Int32
}

func newPhase(title string) *Phase {
	return &Phase{title: title}
}

func (p *Phase) Title() string { return p.title }

func (p *Phase) Status() Status { return Status(p.status.Load()) }

// Actions returns the actions in execution order.
func (p *Phase) Actions() []*Action {
	out := make([]*Action, len(p.actions))
	copy(out, p.actions)
	return out
}

// Append adds an action and returns p so calls can be chained:
//
//	wf.AddPhase("Initialization").
//		Append("Setup environment", setup, nil).
//		Append("Create directories", mkdirs, workflow.Args{"path": "/tmp/example"})
func (p *Phase) Append(name string, logic Logic, args Args) *Phase {
	p.actions = append(p.actions, NewAction(name, logic, args))
	return p
}

// Run executes the actions in order and stops at the first error, which is
// returned unchanged. Actions after the failing one are never started.
func (p *Phase) Run(ctx context.Context, r Reporter) error {
	return p.run(ctx, &runEnv{reporter: r}, 0)
}

func (p *Phase) run(ctx context.Context, env *runEnv, index int) error {
	if !p.status.CompareAndSwap(int32(StatusPending), int32(StatusRunning)) {
		return fmt.Errorf("phase %q: %w", p.title, ErrAlreadyRun)
	}

	final := StatusFailed
	defer func() { p.status.Store(int32(final)) }()

	for i, a := range p.actions {
		ev := Event{Phase: p.title, Action: a.name, PhaseIndex: index, ActionIndex: i}

		ev.Type = EventActionStarted
		env.emit(ev)
		if err := a.Run(ctx, env.reporter); err != nil {
			ev.Type, ev.Err = EventActionFailed, err
			env.emit(ev)
			return err
		}
		ev.Type = EventActionCompleted
		env.emit(ev)
	}

	final = StatusCompleted
	return nil
}
