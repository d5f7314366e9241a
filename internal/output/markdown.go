package output

import "github.com/charmbracelet/glamour"

// GlamourRenderer renders markdown for the terminal with glamour.
type GlamourRenderer struct {
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer wrapping at the given width.
// style names a glamour standard style such as "dark", "light" or "notty";
// an empty style picks one from the terminal background.
func NewGlamourRenderer(width int, style string) (*GlamourRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &GlamourRenderer{renderer: r}, nil
}

// Render implements MarkdownRenderer.
func (g *GlamourRenderer) Render(markdown string) (string, error) {
	return g.renderer.Render(markdown)
}
