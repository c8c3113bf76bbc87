// Package console prints the user-facing progress, success and failure lines
// of a command. Diagnostic detail goes to the zap logger instead.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
)

// Console writes prefixed, optionally colored lines.
type Console struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// New creates a Console. Errors go to errOut, everything else to out.
func New(out, errOut io.Writer, color bool) *Console {
	return &Console{Out: out, Err: errOut, Color: color}
}

// Success prints a green check line.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.Out, c.paint(successStyle, "✓ "+msg))
}

// Template prints a success line for content rendered from a fallback
// template. It is yellow so it stands out from remote generation.
func (c *Console) Template(msg string) {
	fmt.Fprintln(c.Out, c.paint(warnStyle, "✓ "+msg))
}

// Error prints a red cross line.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.Err, c.paint(errorStyle, "✗ "+msg))
}

// Info prints a blue informational line.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, c.paint(infoStyle, "ℹ "+msg))
}

// Warn prints a yellow warning line.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.Out, c.paint(warnStyle, "! "+msg))
}

// Files prints a titled, indented list of paths.
func (c *Console) Files(title string, paths []string) {
	c.Info(title)
	for _, p := range paths {
		fmt.Fprintf(c.Out, "  - %s\n", p)
	}
}

func (c *Console) paint(style lipgloss.Style, s string) string {
	if !c.Color {
		return s
	}
	return style.Render(s)
}
