package output

// PlainTextStyle renders text without colour, optionally with a marker so
// the meaning survives on plain terminals.
type PlainTextStyle struct {
	prefix string
}

// Render implements TextStyle.
func (s PlainTextStyle) Render(text ...string) string {
	out := s.prefix
	for _, t := range text {
		out += t
	}
	return out
}

var plainStyles = map[SemanticType]PlainTextStyle{
	SemanticInfo:    {prefix: "ℹ "},
	SemanticSuccess: {prefix: "✓ "},
	SemanticWarning: {prefix: "⚠ "},
	SemanticError:   {prefix: "✗ "},
}

func plainStyle(semantic SemanticType) PlainTextStyle {
	return plainStyles[semantic]
}
