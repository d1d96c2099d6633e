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
	Register(&DeleteCmd{})
}

// DeleteCmd implements the Delete Task menu action.
type DeleteCmd struct{}

func (c *DeleteCmd) Key() string   { return "5" }
func (c *DeleteCmd) Title() string { return "Delete Task" }

func (c *DeleteCmd) Run(ctx context.Context, svc service.Service, in *prompt.Reader, out io.Writer) error {
	fmt.Fprintln(out, "\n--- Delete Task ---")

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks available.")
		return nil
	}

	id, err := in.Int(ctx, "Enter task ID to delete: ")
	if errors.Is(err, prompt.ErrNotNumber) {
		fmt.Fprintln(out, "Please enter a valid task ID (number).")
		return nil
	}
	if err != nil {
		return err
	}

	task, err := svc.GetTask(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		fmt.Fprintf(out, "Task with ID %d not found.\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	confirmed, err := in.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete task '%s'? (y/N): ", task.Title))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(out, "Deletion cancelled.")
		return nil
	}

	if err := svc.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fmt.Fprintf(out, "Task with ID %d not found.\n", id)
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "Task %d deleted successfully!\n", id)
	return nil
}
