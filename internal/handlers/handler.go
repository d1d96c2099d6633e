// Package handlers provides the menu action interface and implementations.
package handlers

import (
	"context"
	"io"

	"todoapp/internal/prompt"
	"todoapp/internal/service"
)

// Handler defines the interface for menu actions.
type Handler interface {
	// Key returns the menu choice that selects the handler.
	Key() string

	// Title returns the menu label.
	Title() string

	// Run executes the action. It prompts for any further input it needs
	// through in and reports outcomes on out. User-level problems (empty
	// title, non-numeric or unknown id) are printed and swallowed; only
	// unexpected failures are returned.
	Run(ctx context.Context, svc service.Service, in *prompt.Reader, out io.Writer) error
}
