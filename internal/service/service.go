// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no task has the requested identifier.
var ErrNotFound = errors.New("task not found")

// Service defines the interface for task store operations.
// Menu handlers never touch the backing storage directly.
type Service interface {
	// CreateTask adds a task with the next identifier and returns it.
	// The title must be non-empty; callers validate before invoking.
	CreateTask(ctx context.Context, title, description string) (Task, error)

	// ListTasks returns all tasks in creation order.
	// Returns an empty slice when the store is empty.
	ListTasks(ctx context.Context) ([]Task, error)

	// GetTask returns the task with the given identifier.
	GetTask(ctx context.Context, id int) (Task, error)

	// UpdateTask replaces the provided fields on the matching task.
	// A nil pointer leaves the field unchanged. A non-nil empty
	// description clears it.
	UpdateTask(ctx context.Context, id int, title, description *string) error

	// DeleteTask removes the task with the given identifier.
	DeleteTask(ctx context.Context, id int) error

	// ToggleTask flips the completion flag and returns the updated task.
	ToggleTask(ctx context.Context, id int) (Task, error)
}
