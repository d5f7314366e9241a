package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Printer writes console output. Styling comes from an injected
// StyleProvider; without one, or in plain mode, text is written as-is with
// short markers for info, success, warning and error lines.
type Printer struct {
	styleProvider StyleProvider
	markdown      MarkdownRenderer
	writer        io.Writer
	mode          Mode

	mu sync.Mutex
}

// NewPrinter creates a new Printer with the given options.
// By default, it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Print outputs text without any semantic styling.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without any semantic styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text with a newline without any semantic styling.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs confirmation text, typically green.
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning outputs warning text, typically yellow.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs error text, typically red.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Heading outputs a section title.
func (p *Printer) Heading(text string) {
	p.output(SemanticHeading, text, true)
}

// Muted outputs secondary text such as diffs and footnotes.
func (p *Printer) Muted(text string) {
	p.output(SemanticMuted, text, true)
}

// Field outputs a "label: value" line with the label styled.
func (p *Printer) Field(label, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := label + ": " + value
	if p.stylable() {
		line = p.styleProvider.GetStyle(string(SemanticLabel)).Render(label+":") + " " + value
	}
	p.write(line + "\n")
}

// Markdown renders markdown through the configured renderer. The raw
// markdown is printed when no renderer is set or rendering fails.
func (p *Printer) Markdown(markdown string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	text := markdown
	if p.markdown != nil {
		if rendered, err := p.markdown.Render(markdown); err == nil {
			text = rendered
		}
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	p.write(text)
}

// List outputs items as a numbered list starting at 1. Style providers
// that implement ListRenderer draw the list themselves.
func (p *Printer) List(items []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if lr, ok := p.styleProvider.(ListRenderer); ok && p.stylable() {
		p.write(strings.TrimSuffix(lr.List(items), "\n") + "\n")
		return
	}
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	p.write(b.String())
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var rendered string
	if p.stylable() {
		rendered = p.styleProvider.GetStyle(string(semantic)).Render(text)
	} else {
		rendered = plainStyle(semantic).Render(text)
	}
	if addNewline {
		rendered += "\n"
	}
	p.write(rendered)
}

// write strips escape sequences in plain mode so captured output and
// redirected files stay readable. Callers hold p.mu.
func (p *Printer) write(text string) {
	if !p.stylable() {
		text = ansi.Strip(text)
	}
	_, _ = io.WriteString(p.writer, text)
}

func (p *Printer) stylable() bool {
	if p.styleProvider == nil || !p.styleProvider.IsAvailable() {
		return false
	}
	switch p.mode {
	case ModePlain:
		return false
	case ModeStyled:
		return true
	default:
		return termenv.NewOutput(p.writer).ColorProfile() != termenv.Ascii
	}
}

// SetWriter changes the output destination.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if writer != nil {
		p.writer = writer
	}
}

// SetMode changes how the printer decides between styled and plain output.
func (p *Printer) SetMode(mode Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
}

// IsStylable reports whether output is currently styled.
func (p *Printer) IsStylable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stylable()
}
