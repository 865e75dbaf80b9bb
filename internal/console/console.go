// Package console reads line-oriented answers from an input stream and
// writes prompts and messages to an output stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"poisepms/internal/domain"
)

var ErrMalformedInput = errors.New("malformed input")

const (
	msgInvalidNumber  = "Invalid input, please enter a number."
	msgInvalidDecimal = "Invalid input, please enter a decimal number."
)

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine returns the next line without its line terminator. A final line
// without a newline is returned as-is; io.EOF is only returned when nothing
// was left to read.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt prints msg without a newline and reads the answer.
func (c *Console) Prompt(msg string) (string, error) {
	c.Printf("%s", msg)
	return c.ReadLine()
}

// PromptInt keeps asking until the answer parses as an integer.
func (c *Console) PromptInt(msg string) (int64, error) {
	for {
		raw, err := c.Prompt(msg)
		if err != nil {
			return 0, err
		}
		n, err := ParseInt(raw)
		if err == nil {
			return n, nil
		}
		c.Println(msgInvalidNumber)
	}
}

// PromptFloat keeps asking until the answer parses as a decimal.
func (c *Console) PromptFloat(msg string) (float64, error) {
	for {
		raw, err := c.Prompt(msg)
		if err != nil {
			return 0, err
		}
		f, err := ParseFloat(raw)
		if err == nil {
			return f, nil
		}
		c.Println(msgInvalidDecimal)
	}
}

// PromptDate reads one answer and parses it as YYYY-MM-DD. Unlike the
// numeric prompts it does not retry.
func (c *Console) PromptDate(msg string) (time.Time, error) {
	raw, err := c.Prompt(msg)
	if err != nil {
		return time.Time{}, err
	}
	return domain.ParseDate(raw)
}

func (c *Console) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func ParseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, s)
	}
	return n, nil
}

func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, s)
	}
	return f, nil
}
