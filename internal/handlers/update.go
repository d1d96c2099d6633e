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
	Register(&UpdateCmd{})
}

// UpdateCmd implements the Update Task menu action.
type UpdateCmd struct{}

func (c *UpdateCmd) Key() string   { return "4" }
func (c *UpdateCmd) Title() string { return "Update Task" }

func (c *UpdateCmd) Run(ctx context.Context, svc service.Service, in *prompt.Reader, out io.Writer) error {
	fmt.Fprintln(out, "\n--- Update Task ---")

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks available.")
		return nil
	}

	id, err := in.Int(ctx, "Enter task ID to update: ")
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

	fmt.Fprintf(out, "Current title: %s\n", task.Title)
	newTitle, err := in.Line(ctx, "Enter new title (or press Enter to keep current): ")
	if err != nil {
		return err
	}

	current := task.Description
	if current == "" {
		current = "None"
	}
	fmt.Fprintf(out, "Current description: %s\n", current)
	newDescription, err := in.Line(ctx, "Enter new description (or press Enter to clear): ")
	if err != nil {
		return err
	}

	// Blank input keeps the title but clears the description.
	var titlePtr *string
	if newTitle != "" {
		titlePtr = &newTitle
	}
	if err := svc.UpdateTask(ctx, id, titlePtr, &newDescription); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			fmt.Fprintf(out, "Task with ID %d not found.\n", id)
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "Task %d updated successfully!\n", id)
	return nil
}
