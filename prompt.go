package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks the user for answers on the terminal
type Prompter interface {
	Input(message string) (string, error)
	Checkbox(message string, choices []string) ([]string, error)
	Confirm(message string) (bool, error)
}

// LinePrompter reads one answer per line. Checkbox answers are given as
// comma or space separated numbers from the printed list.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter creates a prompter reading from in and writing to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

// Input prints message and returns the trimmed line typed in response
func (p *LinePrompter) Input(message string) (string, error) {
	fmt.Fprintf(p.out, "? %s ", message)
	return p.readLine()
}

// Checkbox prints the numbered choices and returns the selected ones in
// list order. An empty answer selects nothing.
func (p *LinePrompter) Checkbox(message string, choices []string) ([]string, error) {
	fmt.Fprintf(p.out, "? %s\n", message)
	for i, choice := range choices {
		fmt.Fprintf(p.out, "  %2d) %s\n", i+1, choice)
	}

	for {
		fmt.Fprint(p.out, "  Select (e.g. 1,3): ")
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}

		selected, err := parseSelection(line, len(choices))
		if err != nil {
			fmt.Fprintf(p.out, "  %v\n", err)
			continue
		}

		result := make([]string, 0, len(selected))
		for i, ok := range selected {
			if ok {
				result = append(result, choices[i])
			}
		}
		return result, nil
	}
}

// Confirm asks a y/N question; anything but yes is a no
func (p *LinePrompter) Confirm(message string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "  %s [y/N]: ", message)
		input, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, "  Please enter y or n.")
		}
	}
}

// readLine returns the next line without surrounding whitespace. A final
// line without a newline is still an answer.
func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parseSelection turns "1, 3 4" into a selection mask over n choices
func parseSelection(line string, n int) ([]bool, error) {
	selected := make([]bool, n)
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	for _, field := range fields {
		i, err := strconv.Atoi(field)
		if err != nil || i < 1 || i > n {
			return nil, fmt.Errorf("%q is not a number between 1 and %d", field, n)
		}
		selected[i-1] = true
	}

	return selected, nil
}
