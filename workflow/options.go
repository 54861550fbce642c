package workflow

import (
	"io"
	"log/slog"
)

type options struct {
	reporter  Reporter
	logger    *slog.Logger
	observers []Observer
}

// Option configures a Manager or a standalone Workflow.
type Option func(*options)

// WithReporter sets the reporter handed to the runner and to action logic.
// The default is Nop.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an observer for lifecycle events. It may be given
// more than once; observers are called in registration order.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		reporter: Nop{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
