// Package service defines the backend-agnostic interface for task operations.
package service

// Task represents a single todo item.
type Task struct {
	ID          int
	Title       string
	Description string // "" means no description
	Completed   bool
}
