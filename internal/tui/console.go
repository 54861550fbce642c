package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"
)

// ErrInterrupted is returned when the user aborts a progress display or a
// prompt with ctrl+c.
var ErrInterrupted = errors.New("interrupted")

// Console renders workflow output to a terminal. It implements
// workflow.Reporter and adds prompts and structured display helpers.
type Console struct {
	out io.Writer
	in  io.Reader

	interval time.Duration
	maxStep  float64
	advance  func(maxStep float64) float64
	plain    bool
}

type Option func(*Console)

// WithInput reads keyboard input from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return func(c *Console) { c.in = r }
}

// WithProgress sets how often the progress indicator advances and the
// largest single advance.
func WithProgress(interval time.Duration, maxStep float64) Option {
	return func(c *Console) {
		if interval > 0 {
			c.interval = interval
		}
		if maxStep > 0 {
			c.maxStep = maxStep
		}
	}
}

// WithPlainProgress replaces the animated progress display with a single
// completion line, for logs and terminals without cursor control.
func WithPlainProgress(plain bool) Option {
	return func(c *Console) { c.plain = plain }
}

// NewConsole writes to out, or to stdout when out is nil.
func NewConsole(out io.Writer, opts ...Option) *Console {
	if out == nil {
		out = os.Stdout
	}
	c := &Console{
		out:      out,
		interval: 100 * time.Millisecond,
		maxStep:  5,
		advance:  func(maxStep float64) float64 { return rand.Float64() * maxStep },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) PhaseStarted(title string) {
	fmt.Fprintln(c.out, phaseStyle.Render("Running phase: "+title))
}

func (c *Console) Success(message string) {
	fmt.Fprintln(c.out, successStyle.Render("✔ "+message))
}

func (c *Console) Failure(message string) {
	fmt.Fprintln(c.out, failedStyle.Render("✖ "+message))
}

// Banner prints text inside a rounded panel.
func (c *Console) Banner(text string) {
	fmt.Fprintln(c.out, bannerStyle.Render(text))
}

// Println prints a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}
