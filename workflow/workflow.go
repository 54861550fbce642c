package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"cybrconsole/internal/logging"
)

// Workflow is an ordered group of Phases representing one named
// end-to-end operation. It has no status of its own.
type Workflow struct {
	name   string
	phases []*Phase
	opts   options

	mu  sync.Mutex // held for the duration of Run
	ran bool       // guarded by mu
}

// New creates an empty, unregistered Workflow.
func New(name string, opts ...Option) *Workflow {
	return newWorkflow(name, buildOptions(opts))
}

func newWorkflow(name string, o options) *Workflow {
	return &Workflow{name: name, opts: o}
}

func (w *Workflow) Name() string { return w.name }

// Phases returns the phases in execution order.
func (w *Workflow) Phases() []*Phase {
	out := make([]*Phase, len(w.phases))
	copy(out, w.phases)
	return out
}

// AddPhase appends a new Phase and returns it for chained Append calls.
func (w *Workflow) AddPhase(title string) *Phase {
	p := newPhase(title)
	w.phases = append(w.phases, p)
	return p
}

// Run executes the phases in declaration order. The reporter is told about
// each phase before it starts. The first error halts the run and is
// returned unchanged; later phases are never started.
//
// A Workflow runs at most once. Concurrent calls are serialised and every
// call after the first returns ErrAlreadyRun. A call made from inside its
// own run returns ErrNestedRun.
func (w *Workflow) Run(ctx context.Context) error {
	if isRunning(ctx, w) {
		return fmt.Errorf("workflow %q: %w", w.name, ErrNestedRun)
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.ran {
		return fmt.Errorf("workflow %q: %w", w.name, ErrAlreadyRun)
	}
	for _, p := range w.phases {
		if p.Status() != StatusPending {
			return fmt.Errorf("workflow %q: %w", w.name, ErrAlreadyRun)
		}
	}
	w.ran = true

	runID := uuid.NewString()
	ctx = markRunning(ctx, w)
	ctx = logging.WithRun(ctx, w.name, runID)
	env := &runEnv{
		reporter:  w.opts.reporter,
		logger:    logging.LogWith(ctx, w.opts.logger),
		observers: w.opts.observers,
		workflow:  w.name,
		runID:     runID,
	}

	start := time.Now()
	env.emit(Event{Type: EventWorkflowStarted})
	for i, p := range w.phases {
		env.reporter.PhaseStarted(p.title)
		env.emit(Event{Type: EventPhaseStarted, Phase: p.title, PhaseIndex: i})
		if err := p.run(ctx, env, i); err != nil {
			env.emit(Event{Type: EventPhaseFailed, Phase: p.title, PhaseIndex: i, Err: err})
			env.emit(Event{Type: EventWorkflowFailed, Phase: p.title, PhaseIndex: i, Err: err})
			env.logger.Warn("workflow failed", "phase", p.title, "error", err, "elapsed", time.Since(start))
			return err
		}
		env.emit(Event{Type: EventPhaseCompleted, Phase: p.title, PhaseIndex: i})
	}
	env.emit(Event{Type: EventWorkflowCompleted})
	env.logger.Info("workflow completed", "phases", len(w.phases), "elapsed", time.Since(start))
	return nil
}

// runEnv carries the collaborators of one run down to phases and actions.
type runEnv struct {
	reporter  Reporter
	logger    *slog.Logger
	observers []Observer
	workflow  string
	runID     string
}

func (e *runEnv) emit(ev Event) {
	ev.Workflow = e.workflow
	ev.RunID = e.runID
	ev.Timestamp = time.Now()

	if e.logger != nil {
		attrs := []any{"event", string(ev.Type)}
		if ev.Phase != "" {
			attrs = append(attrs, "phase", ev.Phase)
		}
		if ev.Action != "" {
			attrs = append(attrs, "action", ev.Action)
		}
		if ev.Err != nil {
			attrs = append(attrs, "error", ev.Err)
		}
		e.logger.Debug("workflow event", attrs...)
	}
	for _, obs := range e.observers {
		obs(ev)
	}
}
