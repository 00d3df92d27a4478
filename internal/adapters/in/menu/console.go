package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const clearScreenSequence = "\033[H\033[2J"

// Console reads answers line by line and writes prompts and messages.
type Console struct {
	scanner     *bufio.Scanner
	out         io.Writer
	clearScreen bool
}

// NewConsole creates a console over in and out. With clearScreen set, Clear emits the
// ANSI sequence that clears a terminal; otherwise it does nothing.
func NewConsole(in io.Reader, out io.Writer, clearScreen bool) *Console {
	return &Console{
		scanner:     bufio.NewScanner(in),
		out:         out,
		clearScreen: clearScreen,
	}
}

// Ask prints the prompt and returns the next input line without its line ending.
// Returns io.EOF when the input is exhausted.
func (c *Console) Ask(prompt string) (string, error) {
	c.Print(prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.scanner.Text(), "\r"), nil
}

// AskInt repeats the prompt until the answer is an integer accepted by valid, printing
// complaint after every rejected answer.
func (c *Console) AskInt(prompt, complaint string, valid func(int) bool) (int, error) {
	for {
		answer, err := c.Ask(prompt)
		if err != nil {
			return 0, err
		}

		n, err := parseInt(answer)
		if err == nil && valid(n) {
			return n, nil
		}
		c.Println(complaint)
	}
}

func (c *Console) Print(a ...any) {
	_, _ = fmt.Fprint(c.out, a...)
}

func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// Clear clears the terminal when enabled.
func (c *Console) Clear() {
	if c.clearScreen {
		c.Print(clearScreenSequence)
	}
}

// ordinal returns n with its English suffix: 1st, 2nd, 3rd, 4th, 11th, 21st.
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func nonNegative(n int) bool {
	return n >= 0
}

func positive(n int) bool {
	return n > 0
}
