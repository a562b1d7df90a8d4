package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// LineTrigger resumes the session when the user presses Enter.
type LineTrigger struct {
	out    io.Writer
	prompt string
	lines  chan struct{}
}

func NewLineTrigger(in io.Reader, out io.Writer, styles Styles) *LineTrigger {
	t := &LineTrigger{
		out:    out,
		prompt: styles.Help.Render("Press Enter to continue."),
		lines:  make(chan struct{}),
	}
	go func() {
		defer close(t.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			t.lines <- struct{}{}
		}
	}()
	return t
}

func (t *LineTrigger) Wait(ctx context.Context) error {
	fmt.Fprintln(t.out, t.prompt)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case _, ok := <-t.lines:
		if !ok {
			return fmt.Errorf("waiting for input: %w", io.EOF)
		}
		return nil
	}
}
