package interaction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title string, validate func(string) error, input *string) error {
	return huh.NewInput().
		Title(title).
		Validate(validate).
		Value(input).
		Run()
}

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

var runMultiSelectPrompt = func(title string, options []huh.Option[string], selected *[]string) error {
	return huh.NewMultiSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

// HuhPrompter implements Prompter with the huh TUI library.
type HuhPrompter struct{}

func requireValue(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyInput
	}
	return nil
}

func (HuhPrompter) Input(title string) (string, error) {
	var input string
	if err := runInputPrompt(title, requireValue, &input); err != nil {
		return "", wrapAbort("prompt input", err)
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}
	return input, nil
}

func (HuhPrompter) Select(title string, options []string, def string) (string, error) {
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	selected := def
	if err := runSelectPrompt(title, huhOptions, &selected); err != nil {
		return "", wrapAbort("prompt select", err)
	}
	return selected, nil
}

func (HuhPrompter) MultiSelect(title string, options []string, defaults []string) ([]string, error) {
	isDefault := make(map[string]bool, len(defaults))
	for _, d := range defaults {
		isDefault[d] = true
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt).Selected(isDefault[opt])
	}

	var selected []string
	if err := runMultiSelectPrompt(title, huhOptions, &selected); err != nil {
		return nil, wrapAbort("prompt multi-select", err)
	}
	return selected, nil
}

func wrapAbort(op string, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("%s: aborted by user", op)
	}
	return fmt.Errorf("%s: %w", op, err)
}
