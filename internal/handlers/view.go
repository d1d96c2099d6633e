package handlers

import (
	"context"
	"fmt"
	"io"

	"todoapp/internal/output"
	"todoapp/internal/prompt"
	"todoapp/internal/service"
)

func init() {
	Register(&ViewCmd{})
}

// ViewCmd implements the View Tasks menu action.
type ViewCmd struct{}

func (c *ViewCmd) Key() string   { return "2" }
func (c *ViewCmd) Title() string { return "View Tasks" }

func (c *ViewCmd) Run(ctx context.Context, svc service.Service, in *prompt.Reader, out io.Writer) error {
	fmt.Fprintln(out, "\n--- All Tasks ---")

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return nil
	}

	for _, task := range tasks {
		output.FormatTask(out, task)
	}
	return nil
}
