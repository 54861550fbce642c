package workflow

import "context"

// Reporter is the presentation capability the runner and action logic talk
// to. The core only calls PhaseStarted; the remaining methods exist for
// action logic.
type Reporter interface {
	PhaseStarted(title string)
	// Progress blocks until the indicator reaches total or ctx ends.
	Progress(ctx context.Context, label string, total int) error
	Success(message string)
	Failure(message string)
}

// Nop is a Reporter that discards everything. Progress returns immediately
// unless ctx is already done.
type Nop struct{}

func (Nop) PhaseStarted(string) {}

func (Nop) Progress(ctx context.Context, _ string, _ int) error {
	return ctx.Err()
}

func (Nop) Success(string) {}
func (Nop) Failure(string) {}
