package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const maxBarWidth = 40

// advanceMsg is sent every interval to move the indicator forward.
type advanceMsg time.Time

type progressModel struct {
	label    string
	total    float64
	done     float64
	maxStep  float64
	interval time.Duration
	advance  func(float64) float64

	spinner spinner.Model
	bar     progress.Model

	finished bool
	aborted  bool
}

func newProgressModel(label string, total int, interval time.Duration, maxStep float64, advance func(float64) float64) progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = labelStyle

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxBarWidth

	return progressModel{
		label:    label,
		total:    float64(total),
		maxStep:  maxStep,
		interval: interval,
		advance:  advance,
		spinner:  sp,
		bar:      bar,
	}
}

func (m progressModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return advanceMsg(t)
	})
}

func (m progressModel) percent() float64 {
	if m.total <= 0 {
		return 1
	}
	return m.done / m.total
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tick())
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		w := msg.Width - len(m.label) - 12
		m.bar.Width = max(10, min(maxBarWidth, w))

	case advanceMsg:
		m.done += m.advance(m.maxStep)
		if m.done >= m.total {
			m.done = m.total
			m.finished = true
			return m, tea.Quit
		}
		return m, m.tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) View() string {
	icon := m.spinner.View()
	if m.finished {
		icon = successStyle.Render("✔")
	}
	return fmt.Sprintf("%s %s %s %3.0f%%\n", icon, labelStyle.Render(m.label), m.bar.ViewAs(m.percent()), m.percent()*100)
}

// Progress shows a spinner and progress bar that advance by a random amount
// every interval until total units are reached. It blocks until then, until
// ctx ends, or until the user presses ctrl+c.
func (c *Console) Progress(ctx context.Context, label string, total int) error {
	if total <= 0 {
		return ctx.Err()
	}
	if c.plain {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s %s 100%%\n", successStyle.Render("✔"), labelStyle.Render(label))
		return nil
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(c.out)}
	if c.in != nil {
		opts = append(opts, tea.WithInput(c.in))
	}
	p := tea.NewProgram(newProgressModel(label, total, c.interval, c.maxStep, c.advance), opts...)

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return ctxErr
		}
		return fmt.Errorf("progress %q: %w", label, err)
	}
	if m, ok := final.(progressModel); ok && m.aborted {
		return ErrInterrupted
	}
	return nil
}
