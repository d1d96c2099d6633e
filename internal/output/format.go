// Package output provides formatters for shell output.
package output

import (
	"fmt"
	"io"

	"todoapp/internal/service"
)

const (
	// MenuRule frames the menu header.
	MenuRule = "========================================"

	// MenuDivider closes the menu block.
	MenuDivider = "----------------------------------------"
)

// FormatTask writes one task in list form:
//
//	ID: 3 | ✓ | Title: Buy milk
//	     Description: two liters
//
// followed by a blank line. The description line is omitted when the task
// has no description.
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "ID: %d | %s | Title: %s\n", task.ID, Marker(task.Completed), task.Title)
	if task.Description != "" {
		fmt.Fprintf(w, "     Description: %s\n", task.Description)
	}
	fmt.Fprintln(w)
}

// Marker returns the completion marker for a task.
func Marker(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}
