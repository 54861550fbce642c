package workflow

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager is a registry of named workflows and the entry point for running
// a workflow by name.
type Manager struct {
	opts options

	mu        sync.RWMutex
	workflows map[string]*Workflow

	runMu sync.Mutex // one Run at a time per manager
}

// NewManager creates an empty registry. Workflows created through it share
// the given options.
func NewManager(opts ...Option) *Manager {
	return &Manager{
		opts:      buildOptions(opts),
		workflows: make(map[string]*Workflow),
	}
}

// Create registers a fresh, empty Workflow under name and returns it. An
// existing entry with the same name is replaced.
func (m *Manager) Create(name string) *Workflow {
	wf := newWorkflow(name, m.opts)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.workflows[name]; exists {
		m.opts.logger.Debug("replacing workflow", "workflow", name)
	}
	m.workflows[name] = wf
	return wf
}

// Get returns the workflow registered under name.
func (m *Manager) Get(name string) (*Workflow, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	wf, ok := m.workflows[name]
	return wf, ok
}

// Names returns the registered workflow names in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.workflows))
}

// Run runs the workflow registered under name. It returns a *NotFoundError
// without side effects when the name is unknown, and otherwise returns
// whatever the workflow's Run returns.
//
// Runs on one manager never overlap. Action logic that calls Run on the
// manager running it, with the context it was given, gets ErrNestedRun
// instead of blocking forever.
func (m *Manager) Run(ctx context.Context, name string) error {
	if isRunning(ctx, m) {
		return fmt.Errorf("run %q: %w", name, ErrNestedRun)
	}
	m.runMu.Lock()
	defer m.runMu.Unlock()
	ctx = markRunning(ctx, m)

	wf, ok := m.Get(name)
	if !ok {
		return &NotFoundError{Name: name}
	}
	return wf.Run(ctx)
}

type runMarkerKey struct{}

// runMarker chains the managers and workflows currently running on a
// context.
type runMarker struct {
	owner  any
	parent *runMarker
}

func markRunning(ctx context.Context, owner any) context.Context {
	parent, _ := ctx.Value(runMarkerKey{}).(*runMarker)
	return context.WithValue(ctx, runMarkerKey{}, &runMarker{owner: owner, parent: parent})
}

func isRunning(ctx context.Context, owner any) bool {
	for m, _ := ctx.Value(runMarkerKey{}).(*runMarker); m != nil; m = m.parent {
		if m.owner == owner {
			return true
		}
	}
	return false
}
