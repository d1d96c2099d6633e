// Package prompt reads interactive input one line at a time.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNotNumber is returned when numeric input was required but not given.
var ErrNotNumber = errors.New("not a number")

// ErrInterrupted is returned when the context is cancelled during a read.
var ErrInterrupted = errors.New("interrupted")

type result struct {
	line string
	err  error
}

// Reader reads whole lines from an input stream while staying responsive to
// context cancellation. A single background goroutine pulls lines off the
// stream, so a blocked read never blocks shutdown. The channel is closed at
// end of input; receiving from it afterwards keeps reporting io.EOF.
type Reader struct {
	out   io.Writer
	lines chan result
}

// NewReader starts reading from in. Prompts are written to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	r := &Reader{
		out:   out,
		lines: make(chan result),
	}
	go r.pump(in)
	return r
}

func (r *Reader) pump(in io.Reader) {
	defer close(r.lines)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		r.lines <- result{line: sc.Text()}
	}
	if err := sc.Err(); err != nil {
		r.lines <- result{err: err}
	}
}

// Line writes the prompt and returns the next input line with surrounding
// whitespace trimmed. Returns io.EOF when input is exhausted and
// ErrInterrupted when ctx is cancelled first.
func (r *Reader) Line(ctx context.Context, promptText string) (string, error) {
	fmt.Fprint(r.out, promptText)

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case res, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", fmt.Errorf("read input: %w", res.err)
		}
		return strings.TrimSpace(res.line), nil
	}
}

// Int prompts for an integer. Non-numeric input yields ErrNotNumber.
func (r *Reader) Int(ctx context.Context, promptText string) (int, error) {
	s, err := r.Line(ctx, promptText)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotNumber
	}
	return n, nil
}

// Confirm prompts for a yes/no answer. "y" and "yes" (any case) are
// affirmative; anything else declines.
func (r *Reader) Confirm(ctx context.Context, promptText string) (bool, error) {
	s, err := r.Line(ctx, promptText)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
