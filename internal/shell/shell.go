// Package shell runs the interactive menu loop.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"todoapp/internal/exitcode"
	"todoapp/internal/handlers"
	"todoapp/internal/output"
	"todoapp/internal/prompt"
	"todoapp/internal/service"
)

// Shell drives the menu read-eval-print loop over a task service.
type Shell struct {
	registry *handlers.Registry
	svc      service.Service
}

// New creates a new shell with the given handler registry and task service.
func New(registry *handlers.Registry, svc service.Service) *Shell {
	return &Shell{
		registry: registry,
		svc:      svc,
	}
}

// Run reads menu choices from in and dispatches to handlers until the user
// exits, the context is cancelled, or input ends. Returns the exit code.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	reader := prompt.NewReader(in, out)

	fmt.Fprintln(out, "Welcome to the Todo App!")

	for {
		s.printMenu(out)

		choice, err := reader.Line(ctx, "Enter your choice (1-6): ")
		if err != nil {
			return s.finish(out, err)
		}

		h, ok := s.registry.Find(choice)
		if !ok {
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 6.")
			continue
		}

		err = s.runHandler(ctx, h, reader, out)
		switch {
		case err == nil:
			// Next iteration.
		case errors.Is(err, handlers.ErrQuit), errors.Is(err, prompt.ErrInterrupted), errors.Is(err, io.EOF):
			return s.finish(out, err)
		default:
			// Handler failures never terminate the loop.
			fmt.Fprintf(out, "An error occurred: %v\n", err)
		}
	}
}

// runHandler runs one handler, converting a panic into an ordinary error so
// the loop survives it.
func (s *Shell) runHandler(ctx context.Context, h handlers.Handler, in *prompt.Reader, out io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return h.Run(ctx, s.svc, in, out)
}

func (s *Shell) printMenu(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, output.MenuRule)
	fmt.Fprintln(out, "TODO APP - Main Menu")
	fmt.Fprintln(out, output.MenuRule)
	for _, h := range s.registry.All() {
		fmt.Fprintf(out, "%s. %s\n", h.Key(), h.Title())
	}
	fmt.Fprintln(out, output.MenuDivider)
}

// finish prints the farewell and maps the terminating condition to an exit
// code. Menu exit, interrupt, and end of input all terminate normally; only
// a hard read error is abnormal.
func (s *Shell) finish(out io.Writer, err error) int {
	switch {
	case errors.Is(err, handlers.ErrQuit), errors.Is(err, prompt.ErrInterrupted), errors.Is(err, io.EOF):
		fmt.Fprintln(out, "Thank you for using the Todo App. Goodbye!")
		return exitcode.Success
	default:
		fmt.Fprintf(out, "An error occurred: %v\n", err)
		return exitcode.IOError
	}
}
