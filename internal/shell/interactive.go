package shell

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"clinicshell/internal/output"
	"clinicshell/internal/parser"
)

// PromptConfig configures the interactive prompt.
type PromptConfig struct {
	Prompt      string
	HistoryFile string
}

// Run starts the interactive prompt and blocks until bye, Ctrl+D, or Ctrl+C
// on an empty line.
func (s *Session) Run(cfg PromptConfig) error {
	if cfg.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryFile), 0o755); err != nil {
			s.log.Warn("History file disabled", "file", cfg.HistoryFile, "error", err)
			cfg.HistoryFile = ""
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    Completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	// The readline writer is not a terminal file, so settle styling first.
	if s.env.Printer.IsStylable() {
		s.env.Printer.SetMode(output.ModeStyled)
	} else {
		s.env.Printer.SetMode(output.ModePlain)
	}
	s.env.Printer.SetWriter(rl.Stdout())
	s.env.Printer.Println("Welcome to the clinic console. Type 'help' for the list of commands or 'bye' to quit.")

	return s.Loop(func() (string, error) {
		for {
			line, err := rl.Readline()
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				if line == "" {
					return "", ErrEndOfInput
				}
				continue
			case errors.Is(err, io.EOF):
				return "", ErrEndOfInput
			}
			return line, err
		}
	})
}

// Completer offers every command keyword, and the sort keys after
// sort-appointment.
func Completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(parser.Keywords()))
	for _, keyword := range parser.Keywords() {
		if keyword == parser.KeywordSortAppointments {
			items = append(items, readline.PcItem(keyword, readline.PcItem("byDate"), readline.PcItem("byId")))
			continue
		}
		items = append(items, readline.PcItem(keyword))
	}
	return readline.NewPrefixCompleter(items...)
}
