package handlers

import (
	"context"
	"errors"
	"io"

	"todoapp/internal/prompt"
	"todoapp/internal/service"
)

// ErrQuit signals the shell loop to stop after the Exit action.
var ErrQuit = errors.New("quit")

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements the Exit menu action.
type ExitCmd struct{}

func (c *ExitCmd) Key() string   { return "6" }
func (c *ExitCmd) Title() string { return "Exit" }

func (c *ExitCmd) Run(ctx context.Context, svc service.Service, in *prompt.Reader, out io.Writer) error {
	return ErrQuit
}
