package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_StatusProgression(t *testing.T) {
	var seen Status
	var a *Action
	a = NewAction("check", func(context.Context, Reporter, Args) error {
		seen = a.Status()
		return nil
	}, nil)

	assert.Equal(t, StatusPending, a.Status())
	require.NoError(t, a.Run(context.Background(), Nop{}))
	assert.Equal(t, StatusRunning, seen)
	assert.Equal(t, StatusCompleted, a.Status())
}

func TestAction_ErrorMarksFailed(t *testing.T) {
	boom := errors.New("boom")
	a := NewAction("bad", func(context.Context, Reporter, Args) error { return boom }, nil)

	err := a.Run(context.Background(), Nop{})
	assert.Same(t, boom, err)
	assert.Equal(t, StatusFailed, a.Status())
}

func TestAction_PanicMarksFailed(t *testing.T) {
	a := NewAction("panics", func(context.Context, Reporter, Args) error { panic("kaboom") }, nil)

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = a.Run(context.Background(), Nop{})
	})
	assert.Equal(t, StatusFailed, a.Status())
}

func TestAction_RunOnce(t *testing.T) {
	calls := 0
	a := NewAction("once", func(context.Context, Reporter, Args) error {
		calls++
		return nil
	}, nil)

	require.NoError(t, a.Run(context.Background(), Nop{}))
	err := a.Run(context.Background(), Nop{})
	assert.ErrorIs(t, err, ErrAlreadyRun)
	assert.Equal(t, 1, calls)
	assert.Equal(t, StatusCompleted, a.Status())
}

func TestAction_ArgsAreFixed(t *testing.T) {
	args := Args{"path": "/tmp/example"}
	var got string
	a := NewAction("mkdir", func(_ context.Context, _ Reporter, args Args) error {
		got, _ = args.String("path")
		return nil
	}, args)
	args["path"] = "/elsewhere"

	require.NoError(t, a.Run(context.Background(), Nop{}))
	assert.Equal(t, "/tmp/example", got)
	assert.Equal(t, Args{"path": "/tmp/example"}, a.Args())
}

func TestAction_ContextReachesLogic(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	var got any
	a := NewAction("ctx", func(ctx context.Context, _ Reporter, _ Args) error {
		got = ctx.Value(key{})
		return nil
	}, nil)

	require.NoError(t, a.Run(ctx, Nop{}))
	assert.Equal(t, "v", got)
}

func TestNewAction_InvalidPanics(t *testing.T) {
	noop := func(context.Context, Reporter, Args) error { return nil }
	assert.Panics(t, func() { NewAction("", noop, nil) })
	assert.Panics(t, func() { NewAction("x", nil, nil) })
}

func TestPhase_AppendChainsAndAllowsDuplicates(t *testing.T) {
	noop := func(context.Context, Reporter, Args) error { return nil }
	p := newPhase("dup")
	same := p.Append("a", noop, nil).Append("a", noop, nil)

	assert.Same(t, p, same)
	require.Len(t, p.Actions(), 2)
	assert.Equal(t, "a", p.Actions()[1].Name())
}

func TestPhase_RunStandalone(t *testing.T) {
	var order []string
	rec := func(name string) Logic {
		return func(context.Context, Reporter, Args) error {
			order = append(order, name)
			return nil
		}
	}
	p := newPhase("solo").Append("one", rec("one"), nil).Append("two", rec("two"), nil)

	require.NoError(t, p.Run(context.Background(), Nop{}))
	assert.Equal(t, []string{"one", "two"}, order)
	assert.Equal(t, StatusCompleted, p.Status())

	assert.ErrorIs(t, p.Run(context.Background(), Nop{}), ErrAlreadyRun)
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		s        Status
		want     string
		terminal bool
	}{
		{StatusPending, "pending", false},
		{StatusRunning, "running", false},
		{StatusCompleted, "completed", true},
		{StatusFailed, "failed", true},
		{Status(42), "unknown", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
		assert.Equal(t, tt.terminal, tt.s.IsTerminal())
	}
}
