package commands

import (
	"errors"
	"fmt"

	"clinicshell/internal/clinic"
	"clinicshell/internal/output"
	"clinicshell/internal/parser"
)

// ErrExit is returned by the exit command to end the session.
var ErrExit = errors.New("exit requested")

// Command executes one kind of parsed request.
type Command interface {
	Name() string
	Description() string
	Usage() string
	HelpInfo() HelpInfo
	// Mutates reports whether a successful run changes clinic records.
	Mutates() bool
	Execute(req parser.Request, env *Env) error
}

// Env is what a command works against.
type Env struct {
	Manager *clinic.Manager
	Printer *output.Printer
}

// HelpInfo is structured help for a command, rendered by the help command.
type HelpInfo struct {
	Command     string
	Description string
	Usage       string
	Examples    []HelpExample
	Notes       []string
}

// HelpExample is a usage example with explanation.
type HelpExample struct {
	Command     string
	Description string
}

// UnexpectedRequestError is returned when a command receives a request of
// another kind.
func UnexpectedRequestError(cmd Command, req parser.Request) error {
	return fmt.Errorf("command %s cannot execute %T", cmd.Name(), req)
}
