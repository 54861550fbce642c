package actions

import (
	"fmt"
	"slices"
	"sync"

	"cybrconsole/workflow"
)

// UnknownActionError is returned by Catalog.Get for a name that was never
// registered.
type UnknownActionError struct {
	Name string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("action '%s' not found", e.Name)
}

// Catalog maps action names to reusable logic so workflows can be assembled
// from names.
type Catalog struct {
	mu    sync.RWMutex
	logic map[string]workflow.Logic
}

func NewCatalog() *Catalog {
	return &Catalog{logic: make(map[string]workflow.Logic)}
}

// Register adds logic under name, replacing any previous registration.
func (c *Catalog) Register(name string, logic workflow.Logic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logic[name] = logic
}

// Get retrieves logic by name.
func (c *Catalog) Get(name string) (workflow.Logic, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	l, ok := c.logic[name]
	if !ok {
		return nil, &UnknownActionError{Name: name}
	}
	return l, nil
}

// Names lists the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.logic))
	for n := range c.logic {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Step names one catalog entry with its arguments.
type Step struct {
	Label  string
	Action string
	Args   workflow.Args
}

// AppendSteps resolves each step in the catalog and appends it to p. No
// action is appended when any name is unknown.
func (c *Catalog) AppendSteps(p *workflow.Phase, steps ...Step) error {
	resolved := make([]workflow.Logic, len(steps))
	for i, s := range steps {
		l, err := c.Get(s.Action)
		if err != nil {
			return err
		}
		resolved[i] = l
	}
	for i, s := range steps {
		p.Append(s.Label, resolved[i], s.Args)
	}
	return nil
}
