package ui

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Interactive reports whether prompts can be shown
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Confirmer asks a yes/no question
type Confirmer interface {
	Confirm(title, description, affirmative, negative string) (bool, error)
}

// HuhConfirmer asks in the terminal.
//
// Aborting the form (ctrl+c / esc) counts as declining.
type HuhConfirmer struct{}

func (HuhConfirmer) Confirm(title, description, affirmative, negative string) (bool, error) {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative(affirmative).
				Negative(negative).
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	return confirmed, nil
}

type Option struct {
	Label string
	Value string
}

// Select asks to pick one of options and returns its value
func Select(title string, options []Option) (string, error) {
	var value string

	huhOptions := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		huhOptions = append(huhOptions, huh.NewOption(o.Label, o.Value))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huhOptions...).
				Value(&value),
		),
	).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", NewAbortError("Cancelled.")
		}
		return "", err
	}

	return value, nil
}

// Input asks for a line of text, returning placeholder when left empty
func Input(title, placeholder string) (string, error) {
	var value string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(&value),
		),
	).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", NewAbortError("Cancelled.")
		}
		return "", err
	}

	if value == "" {
		return placeholder, nil
	}
	return value, nil
}
