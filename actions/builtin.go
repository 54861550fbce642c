package actions

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"cybrconsole/workflow"
)

// Builtin names registered by Library.Register.
const (
	SetupEnv         = "setup_env"
	CreateDirs       = "create_dirs"
	ProcessData      = "process_data"
	GenerateReport   = "generate_report"
	Cleanup          = "cleanup"
	SendNotification = "send_notification"
	CheckPath        = "check_path"
)

// Library holds the dependencies of the builtin actions.
type Library struct {
	Fs afero.Fs
	// Pause is the base delay after each progress display; individual
	// actions scale it.
	Pause time.Duration
}

// NewLibrary uses the OS filesystem when fs is nil.
func NewLibrary(fs afero.Fs, pause time.Duration) *Library {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Library{Fs: fs, Pause: pause}
}

// Register adds every builtin action to c.
func (l *Library) Register(c *Catalog) {
	c.Register(SetupEnv, l.setupEnv)
	c.Register(CreateDirs, l.createDirs)
	c.Register(ProcessData, l.processData)
	c.Register(GenerateReport, l.generateReport)
	c.Register(Cleanup, l.cleanup)
	c.Register(SendNotification, l.sendNotification)
	c.Register(CheckPath, l.checkPath)
}

func (l *Library) wait(ctx context.Context, factor float64) error {
	d := time.Duration(float64(l.Pause) * factor)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// simulate shows progress for total units, then pauses.
func (l *Library) simulate(ctx context.Context, r workflow.Reporter, args workflow.Args, label string, total int, factor float64) error {
	total, err := args.IntOr("total", total)
	if err != nil {
		return err
	}
	if err := r.Progress(ctx, label, total); err != nil {
		return err
	}
	return l.wait(ctx, factor)
}

func (l *Library) setupEnv(ctx context.Context, r workflow.Reporter, args workflow.Args) error {
	if err := l.simulate(ctx, r, args, "Setting up environment...", 50, 1); err != nil {
		return err
	}
	r.Success("Environment setup complete")
	return nil
}

func (l *Library) createDirs(ctx context.Context, r workflow.Reporter, args workflow.Args) error {
	path, err := args.String("path")
	if err != nil {
		return err
	}
	if err := l.simulate(ctx, r, args, fmt.Sprintf("Creating directory at %s...", path), 30, 1); err != nil {
		return err
	}
	if err := l.Fs.MkdirAll(path, 0o755); err != nil {
		r.Failure(fmt.Sprintf("Could not create %s", path))
		return fmt.Errorf("create %s: %w", path, err)
	}
	r.Success(fmt.Sprintf("Directory created at %s", path))
	return nil
}

func (l *Library) processData(ctx context.Context, r workflow.Reporter, args workflow.Args) error {
	input, err := args.String("input_file")
	if err != nil {
		return err
	}
	if err := l.simulate(ctx, r, args, fmt.Sprintf("Processing data from %s...", input), 100, 2); err != nil {
		return err
	}
	r.Success(fmt.Sprintf("Data processed from %s", input))
	return nil
}

func (l *Library) generateReport(ctx context.Context, r workflow.Reporter, args workflow.Args) error {
	if err := l.simulate(ctx, r, args, "Generating report...", 75, 1.5); err != nil {
		return err
	}
	r.Success("Report generated")
	return nil
}

// cleanup removes the optional "path" argument recursively.
func (l *Library) cleanup(ctx context.Context, r workflow.Reporter, args workflow.Args) error {
	if err := l.simulate(ctx, r, args, "Cleaning up...", 40, 1); err != nil {
		return err
	}
	if args.Has("path") {
		path, err := args.String("path")
		if err != nil {
			return err
		}
		if err := l.Fs.RemoveAll(path); err != nil {
			r.Failure(fmt.Sprintf("Could not remove %s", path))
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	r.Success("Cleanup complete")
	return nil
}

func (l *Library) sendNotification(ctx context.Context, r workflow.Reporter, args workflow.Args) error {
	email, err := args.String("email")
	if err != nil {
		return err
	}
	if err := l.simulate(ctx, r, args, fmt.Sprintf("Sending notification to %s...", email), 25, 1); err != nil {
		return err
	}
	r.Success(fmt.Sprintf("Notification sent to %s", email))
	return nil
}

// checkPath fails unless "path" exists.
func (l *Library) checkPath(_ context.Context, r workflow.Reporter, args workflow.Args) error {
	path, err := args.String("path")
	if err != nil {
		return err
	}
	if _, err := l.Fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			r.Failure(fmt.Sprintf("%s does not exist", path))
		}
		return fmt.Errorf("check %s: %w", path, err)
	}
	r.Success(fmt.Sprintf("%s is present", path))
	return nil
}
