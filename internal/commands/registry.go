// Package commands provides command registration and execution for the
// clinic console. It manages a global registry of commands keyed by their
// keyword and dispatches parsed requests to them.
package commands

import (
	"fmt"
	"sort"
	"sync"

	"clinicshell/internal/logger"
	"clinicshell/internal/parser"
)

// Registry manages command registration and lookup.
// It provides thread-safe registration and retrieval of commands by keyword.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry. Returns an error if the command
// name is empty, is not a parser keyword, or is already registered.
func (r *Registry) Register(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Name() == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if !parser.IsKeyword(cmd.Name()) {
		return fmt.Errorf("command %s has no parser keyword", cmd.Name())
	}
	if _, exists := r.commands[cmd.Name()]; exists {
		return fmt.Errorf("command %s already registered", cmd.Name())
	}

	r.commands[cmd.Name()] = cmd
	return nil
}

// Unregister removes a command from the registry by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, name)
}

// Get retrieves a command by name.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetAll returns all registered commands sorted by name.
func (r *Registry) GetAll() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		commands = append(commands, cmd)
	}
	sort.Slice(commands, func(i, j int) bool { return commands[i].Name() < commands[j].Name() })
	return commands
}

// Execute runs the command registered for the request's keyword.
func (r *Registry) Execute(req parser.Request, env *Env) error {
	_, err := r.Dispatch(req, env)
	return err
}

// Dispatch runs the command registered for the request's keyword and returns
// it along with its error. The command is nil when none is registered.
func (r *Registry) Dispatch(req parser.Request, env *Env) (Command, error) {
	cmd, exists := r.Get(req.Keyword())
	if !exists {
		return nil, fmt.Errorf("unknown command: %s", req.Keyword())
	}
	logger.CommandExecution(req.Keyword(), fmt.Sprintf("%+v", req))
	return cmd, cmd.Execute(req, env)
}

// IsValidCommand checks if a command exists in the registry.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// GlobalRegistry is the registry the console dispatches to.
// Commands register themselves with this instance during initialization.
var GlobalRegistry = NewRegistry()
