package builtin

import (
	"clinicshell/internal/commands"
	"clinicshell/internal/parser"
)

// ExitCommand implements bye. It returns commands.ErrExit so the shell can
// stop its loop after the records are saved.
type ExitCommand struct{ base }

// Execute says goodbye and signals the end of the session.
func (c *ExitCommand) Execute(req parser.Request, env *commands.Env) error {
	if _, ok := req.(parser.Exit); !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	env.Printer.Println("Goodbye! All records have been saved.")
	return commands.ErrExit
}

func init() {
	register(&ExitCommand{base{keyword: parser.KeywordExit, notes: []string{"Ctrl+D also exits"}}})
}
