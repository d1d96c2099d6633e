package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"todoapp/internal/prompt"
	"todoapp/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the Mark Task Complete/Incomplete menu action.
type ToggleCmd struct{}

func (c *ToggleCmd) Key() string   { return "3" }
func (c *ToggleCmd) Title() string { return "Mark Task Complete/Incomplete" }

func (c *ToggleCmd) Run(ctx context.Context, svc service.Service, in *prompt.Reader, out io.Writer) error {
	fmt.Fprintln(out, "\n--- Mark Task Complete/Incomplete ---")

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks available.")
		return nil
	}

	id, err := in.Int(ctx, "Enter task ID to toggle completion status: ")
	if errors.Is(err, prompt.ErrNotNumber) {
		fmt.Fprintln(out, "Please enter a valid task ID (number).")
		return nil
	}
	if err != nil {
		return err
	}

	task, err := svc.ToggleTask(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		fmt.Fprintf(out, "Task with ID %d not found.\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	status := "incomplete"
	if task.Completed {
		status = "completed"
	}
	fmt.Fprintf(out, "Task %d marked as %s!\n", id, status)
	return nil
}
