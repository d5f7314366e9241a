// Package builtin contains the console commands. Each command registers
// itself with commands.GlobalRegistry in init.
package builtin

import (
	"fmt"

	"clinicshell/internal/commands"
	"clinicshell/internal/parser"
)

// base supplies the help surface of a command from the parser's usage table.
type base struct {
	keyword string
	mutates bool
	notes   []string
}

// Name returns the command keyword.
func (b base) Name() string {
	return b.keyword
}

// Description returns a brief description of what the command does.
func (b base) Description() string {
	u, _ := parser.UsageFor(b.keyword)
	return u.Description
}

// Usage returns the command syntax.
func (b base) Usage() string {
	u, _ := parser.UsageFor(b.keyword)
	return u.Syntax
}

// Mutates reports whether the command changes clinic records.
func (b base) Mutates() bool {
	return b.mutates
}

// HelpInfo returns structured help information for the command.
func (b base) HelpInfo() commands.HelpInfo {
	u, _ := parser.UsageFor(b.keyword)
	info := commands.HelpInfo{
		Command:     b.keyword,
		Description: u.Description,
		Usage:       u.Syntax,
		Notes:       b.notes,
	}
	if u.Example != "" {
		info.Examples = []commands.HelpExample{{Command: u.Example, Description: u.Description}}
	}
	return info
}

func register(cmd commands.Command) {
	if err := commands.GlobalRegistry.Register(cmd); err != nil {
		panic(fmt.Sprintf("failed to register %s command: %v", cmd.Name(), err))
	}
}
