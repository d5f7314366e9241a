// Package output provides the console printer for the clinic shell.
// Styling is injected through StyleProvider so the printer works the same
// with themes, plain terminals and test buffers.
package output

// StyleProvider is implemented by theme sets that can style semantic text.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider is ready to provide styles.
	IsAvailable() bool
}

// TextStyle renders text with styling. lipgloss.Style satisfies it.
type TextStyle interface {
	Render(text ...string) string
}

// ListRenderer is optionally implemented by style providers that draw
// numbered lists.
type ListRenderer interface {
	List(items []string) string
}

// MarkdownRenderer turns markdown into terminal text.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// Mode defines how the printer decides between styled and plain output.
type Mode int

const (
	// ModeAuto styles output only when the writer is a colour-capable terminal.
	ModeAuto Mode = iota
	// ModeStyled always styles output.
	ModeStyled
	// ModePlain never styles output.
	ModePlain
)

// SemanticType defines the meaning of a piece of output.
type SemanticType string

const (
	SemanticPlain   SemanticType = "plain"
	SemanticInfo    SemanticType = "info"
	SemanticSuccess SemanticType = "success"
	SemanticWarning SemanticType = "warning"
	SemanticError   SemanticType = "error"
	SemanticHeading SemanticType = "heading"
	SemanticLabel   SemanticType = "label"
	SemanticMuted   SemanticType = "muted"
)
