package workflow

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Logic is the unit of work bound to an Action.
type Logic func(ctx context.Context, r Reporter, args Args) error

// Action is the smallest unit of work in a workflow.
type Action struct {
	name   string
	logic  Logic
	args   Args
	status atomic.Int32
}

// NewAction binds logic to a copy of args. It panics on an empty name or
// nil logic, both of which are assembly mistakes.
func NewAction(name string, logic Logic, args Args) *Action {
	if name == "" {
		panic("workflow: empty action name")
	}
	if logic == nil {
		panic(fmt.Sprintf("workflow: nil logic for action %q", name))
	}
	return &Action{name: name, logic: logic, args: args.clone()}
}

func (a *Action) Name() string { return a.name }

// Args returns a copy of the bound arguments.
func (a *Action) Args() Args { return a.args.clone() }

func (a *Action) Status() Status { return Status(a.status.Load()) }

// Run invokes the bound logic once. The Action ends Completed when the
// logic returns nil and Failed otherwise, including when it panics. The
// logic's error is returned as is.
func (a *Action) Run(ctx context.Context, r Reporter) error {
	if !a.status.CompareAndSwap(int32(StatusPending), int32(StatusRunning)) {
		return fmt.Errorf("action %q: %w", a.name, ErrAlreadyRun)
	}

	final := StatusFailed
	defer func() { a.status.Store(int32(final)) }()

	if err := a.logic(ctx, r, a.args); err != nil {
		return err
	}
	final = StatusCompleted
	return nil
}
