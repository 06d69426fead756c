package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Terminal is a line-based console over an input reader and an output writer.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Prompt writes label and reads one line without its line terminator.
// A final line without a trailing newline is returned before io.EOF.
func (t *Terminal) Prompt(label string) (string, error) {
	fmt.Fprint(t.out, label)
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}
