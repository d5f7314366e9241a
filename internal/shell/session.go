// Package shell runs clinic commands from the interactive prompt or from a
// batch file. Every line is parsed, executed against the clinic records and,
// when it changed them, saved to disk before the next line is read.
package shell

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"clinicshell/internal/clinic"
	"clinicshell/internal/commands"
	_ "clinicshell/internal/commands/builtin" // Import for side effects (init functions)
	"clinicshell/internal/logger"
	"clinicshell/internal/output"
	"clinicshell/internal/parser"
	"clinicshell/internal/storage"
	"clinicshell/internal/testutils"
)

// Session ties the parser, the command registry and the record store together.
type Session struct {
	ID string

	parser   *parser.Parser
	registry *commands.Registry
	store    *storage.Store
	env      *commands.Env
	log      *log.Logger
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	clock    func() time.Time
	testMode bool
	registry *commands.Registry
}

// WithClock sets the clock used for appointment checks and prescription
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *sessionConfig) { c.clock = now }
}

// WithTestMode makes session ids and the clock deterministic.
func WithTestMode(testMode bool) Option {
	return func(c *sessionConfig) { c.testMode = testMode }
}

// WithRegistry dispatches to r instead of commands.GlobalRegistry.
func WithRegistry(r *commands.Registry) Option {
	return func(c *sessionConfig) { c.registry = r }
}

// NewSession loads the records in store and returns a session that prints
// through printer.
func NewSession(store *storage.Store, printer *output.Printer, opts ...Option) (*Session, error) {
	cfg := sessionConfig{registry: commands.GlobalRegistry}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.clock == nil {
		cfg.clock = testutils.Clock(cfg.testMode)
	}

	snap, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	manager := clinic.NewManager(clinic.WithClock(cfg.clock))
	manager.Restore(snap)

	s := &Session{
		ID:       testutils.GenerateUUID(cfg.testMode),
		parser:   parser.New(parser.WithClock(cfg.clock)),
		registry: cfg.registry,
		store:    store,
		env:      &commands.Env{Manager: manager, Printer: printer},
		log:      logger.NewStyledLogger("Shell"),
	}
	s.log.Info("Session started", "session", s.ID, "dir", store.Dir(),
		"patients", len(snap.Patients), "appointments", len(snap.Appointments))
	return s, nil
}

// Manager returns the session's clinic records.
func (s *Session) Manager() *clinic.Manager {
	return s.env.Manager
}

// ProcessLine parses and executes one command line. Records are saved after
// a command that changed them. commands.ErrExit is returned for bye.
func (s *Session) ProcessLine(line string) error {
	req, err := s.parser.Parse(line)
	if err != nil {
		s.log.Debug("Parse failed", "session", s.ID, "input", line, "error", err)
		return err
	}

	cmd, err := s.registry.Dispatch(req, s.env)
	if cmd == nil {
		return err
	}
	if err != nil && !errors.Is(err, commands.ErrExit) {
		s.log.Debug("Command failed", "session", s.ID, "command", req.Keyword(), "error", err)
		return err
	}
	if cmd.Mutates() || errors.Is(err, commands.ErrExit) {
		if saveErr := s.Save(); saveErr != nil {
			return saveErr
		}
	}
	return err
}

// Save writes all records to the store.
func (s *Session) Save() error {
	if err := s.store.Save(s.env.Manager.Snapshot()); err != nil {
		s.log.Error("Failed to save records", "session", s.ID, "error", err)
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Loop reads lines from next until it returns an error or bye is entered.
// Command errors are printed and the loop continues. A nil return means the
// session ended normally.
func (s *Session) Loop(next func() (string, error)) error {
	for {
		line, err := next()
		if err != nil {
			if errors.Is(err, ErrEndOfInput) {
				return s.Save()
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		err = s.ProcessLine(line)
		if errors.Is(err, commands.ErrExit) {
			return nil
		}
		if err != nil {
			s.env.Printer.Error(err.Error())
		}
	}
}

// ErrEndOfInput is returned by a line source that has no more lines.
var ErrEndOfInput = errors.New("end of input")
