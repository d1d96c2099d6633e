package handlers

import (
	"context"
	"fmt"
	"io"

	"todoapp/internal/prompt"
	"todoapp/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the Add Task menu action.
type AddCmd struct{}

func (c *AddCmd) Key() string   { return "1" }
func (c *AddCmd) Title() string { return "Add Task" }

func (c *AddCmd) Run(ctx context.Context, svc service.Service, in *prompt.Reader, out io.Writer) error {
	fmt.Fprintln(out, "\n--- Add New Task ---")

	title, err := in.Line(ctx, "Enter task title: ")
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(out, "Task title cannot be empty!")
		return nil
	}

	// Blank input means no description.
	description, err := in.Line(ctx, "Enter task description (optional): ")
	if err != nil {
		return err
	}

	task, err := svc.CreateTask(ctx, title, description)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Task added successfully with ID: %d\n", task.ID)
	return nil
}
