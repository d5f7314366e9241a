package builtin

import (
	"fmt"
	"strings"

	"clinicshell/internal/commands"
	"clinicshell/internal/parser"
)

// HelpCommand implements help: a table of every command in presentation
// order, rendered as markdown.
type HelpCommand struct{ base }

// Execute prints the command table.
func (c *HelpCommand) Execute(req parser.Request, env *commands.Env) error {
	if _, ok := req.(parser.Help); !ok {
		return commands.UnexpectedRequestError(c, req)
	}
	env.Printer.Markdown(HelpMarkdown(commands.GlobalRegistry))
	return nil
}

// HelpMarkdown builds the help table for the commands registered in r.
func HelpMarkdown(r *commands.Registry) string {
	var b strings.Builder
	b.WriteString("# Clinic commands\n\n")
	b.WriteString("| Command | Usage | Description |\n")
	b.WriteString("|---|---|---|\n")
	for _, u := range parser.Usages() {
		cmd, ok := r.Get(u.Keyword)
		if !ok {
			continue
		}
		info := cmd.HelpInfo()
		fmt.Fprintf(&b, "| %s | `%s` | %s |\n", info.Command, escapeCell(info.Usage), escapeCell(info.Description))
	}
	b.WriteString("\nPrefixes may appear in any order. Commands are case-insensitive.\n")
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func init() {
	register(&HelpCommand{base{keyword: parser.KeywordHelp}})
}
