package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrNoChoices is returned by Select and MultiSelect for an empty list.
var ErrNoChoices = errors.New("no choices to select from")

func (c *Console) runForm(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithOutput(c.out)
	if c.in != nil {
		form = form.WithInput(c.in)
	}
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrInterrupted
		}
		return err
	}
	return nil
}

// Select asks the user to pick one of choices.
func (c *Console) Select(ctx context.Context, prompt string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}
	var selected string
	field := huh.NewSelect[string]().
		Title(prompt).
		Options(huh.NewOptions(choices...)...).
		Value(&selected)
	if err := c.runForm(ctx, field); err != nil {
		return "", err
	}
	return selected, nil
}

// MultiSelect asks the user to tick any number of choices.
func (c *Console) MultiSelect(ctx context.Context, prompt string, choices []string) ([]string, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	var selected []string
	field := huh.NewMultiSelect[string]().
		Title(prompt).
		Options(huh.NewOptions(choices...)...).
		Value(&selected)
	if err := c.runForm(ctx, field); err != nil {
		return nil, err
	}
	return selected, nil
}

// Text asks for free-form, possibly multi-line, input.
func (c *Console) Text(ctx context.Context, prompt string) (string, error) {
	var text string
	field := huh.NewText().
		Title(prompt).
		Value(&text)
	if err := c.runForm(ctx, field); err != nil {
		return "", err
	}
	return text, nil
}
