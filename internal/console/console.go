package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned once the input stream has no more lines.
var ErrInputClosed = errors.New("console input closed")

// Console reads user input line by line and writes prompts and output.
// It is not safe for concurrent use.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Out returns the writer prompts and results are written to.
func (c *Console) Out() io.Writer {
	return c.out
}

// ReadLine blocks until one full line is read and returns it without the line terminator.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt prints text without a newline and reads the answer.
func (c *Console) Prompt(text string) (string, error) {
	c.Print(text)
	return c.ReadLine()
}

// ReadMenuChoice prompts until a line parses as an integer.
// Only a failing or exhausted input stream ends the loop early.
func (c *Console) ReadMenuChoice() (int, error) {
	for {
		line, err := c.Prompt("\nPlease make your choice: ")
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.Println("Your input is invalid!")
			continue
		}
		return choice, nil
	}
}

func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
