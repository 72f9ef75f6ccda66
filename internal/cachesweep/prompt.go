package cachesweep

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the operator a question and returns one line of input.
type Prompter interface {
	Prompt(ctx context.Context, prompt string) (string, error)
}

// LinePrompter reads answers line by line from an input stream.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter writing prompts to output.
func NewLinePrompter(input io.Reader, output io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(input), out: output}
}

// Prompt writes prompt and reads the next line without its line ending.
// A final line without a trailing newline is returned as is; io.EOF is
// returned once the input is exhausted. The read races ctx, and the reading
// goroutine may outlive a cancelled call.
func (p *LinePrompter) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(p.out, prompt) //nolint:errcheck // best-effort output

	type result struct {
		line string
		err  error
	}

	ch := make(chan result, 1)

	go func() {
		line, err := p.in.ReadString('\n')
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil && (!errors.Is(r.err, io.EOF) || r.line == "") {
			return "", r.err
		}

		return strings.TrimRight(r.line, "\r\n"), nil
	}
}
