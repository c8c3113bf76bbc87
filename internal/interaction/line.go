package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrompter asks questions as numbered menus over plain reader/writer
// streams. It is used when stdin is piped and in tests.
type LinePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLinePrompter creates a LinePrompter reading answers from r and writing
// questions to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), w: w}
}

// readLine returns the next trimmed line. eof is true when the stream ended;
// a final unterminated line is still returned.
func (p *LinePrompter) readLine() (line string, eof bool, err error) {
	line, err = p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimSpace(line), true, nil
		}
		return "", false, fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), false, nil
}

func (p *LinePrompter) Input(title string) (string, error) {
	for {
		fmt.Fprintf(p.w, "%s ", title)
		line, eof, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		if eof {
			fmt.Fprintln(p.w)
			return "", ErrEmptyInput
		}
		fmt.Fprintln(p.w, "A value is required.")
	}
}

func (p *LinePrompter) Select(title string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options for %q", title)
	}
	for {
		p.printMenu(title, options)
		fmt.Fprintf(p.w, "Enter number [1-%d] (default: %s): ", len(options), def)

		line, eof, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return def, nil
		}

		num, convErr := strconv.Atoi(line)
		if convErr == nil && num >= 1 && num <= len(options) {
			return options[num-1], nil
		}
		if eof {
			return "", fmt.Errorf("invalid selection %q: choose 1-%d", line, len(options))
		}
		fmt.Fprintf(p.w, "Invalid selection %q: choose 1-%d\n", line, len(options))
	}
}

func (p *LinePrompter) MultiSelect(title string, options []string, defaults []string) ([]string, error) {
	for {
		p.printMenu(title, options)
		fmt.Fprintf(p.w, "Enter numbers separated by commas (default: %s): ", strings.Join(defaults, ", "))

		line, eof, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return append([]string(nil), defaults...), nil
		}

		picked, parseErr := parseSelection(line, options)
		if parseErr == nil {
			return picked, nil
		}
		if eof {
			return nil, parseErr
		}
		fmt.Fprintln(p.w, parseErr)
	}
}

func (p *LinePrompter) printMenu(title string, options []string) {
	fmt.Fprintf(p.w, "\n%s\n", title)
	for i, opt := range options {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, opt)
	}
}

// parseSelection turns "1, 3" into the matching options, in menu order and
// without duplicates.
func parseSelection(line string, options []string) ([]string, error) {
	chosen := make([]bool, len(options))
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		num, err := strconv.Atoi(field)
		if err != nil || num < 1 || num > len(options) {
			return nil, fmt.Errorf("invalid selection %q: choose 1-%d", field, len(options))
		}
		chosen[num-1] = true
	}

	var out []string
	for i, ok := range chosen {
		if ok {
			out = append(out, options[i])
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("invalid selection %q: choose at least one", line)
	}
	return out, nil
}
