// Package prompt reads bounded integers interactively, re-asking until the
// answer meets the threshold.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput indicates the input stream ended before a valid answer.
var ErrNoInput = errors.New("prompt: input closed before a valid answer")

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// IntAtLeast prints question until a line parses as an integer >= min.
func (p *Prompter) IntAtLeast(question string, min int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s ", question)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("read answer: %w", err)
			}
			return 0, ErrNoInput
		}
		n, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a whole number.\n")
			continue
		}
		if n < min {
			fmt.Fprintf(p.out, "The value must be at least %d.\n", min)
			continue
		}
		return n, nil
	}
}
