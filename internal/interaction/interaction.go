// Package interaction collects missing command input from the user, either
// through huh terminal forms or, when stdin is not a terminal, through plain
// numbered menus read line by line.
package interaction

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrEmptyInput is returned when input ends before a required value was given.
// While input is available, empty answers are re-prompted instead.
var ErrEmptyInput = errors.New("a value is required")

// Prompter asks questions and blocks until they are answered.
type Prompter interface {
	// Input asks for free text and only returns a non-empty, trimmed answer.
	Input(title string) (string, error)
	// Select asks for exactly one of options; def is preselected.
	Select(title string, options []string, def string) (string, error)
	// MultiSelect asks for any subset of options; defaults are preselected.
	MultiSelect(title string, options []string, defaults []string) ([]string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Default picks the huh prompter for terminals and the line prompter otherwise.
func Default(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && IsTerminal(f) {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}
