// Package theme loads the console colour themes embedded in the binary and
// exposes them as output style providers.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/list"
	"gopkg.in/yaml.v3"

	"clinicshell/internal/data/embedded"
	"clinicshell/internal/logger"
	"clinicshell/internal/output"
)

// Plain is the name of the theme without styling, used as the fallback.
const Plain = "plain"

// File is the YAML layout of a theme file.
type File struct {
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description,omitempty"`
	Styles      map[string]StyleConfig `yaml:"styles"`
}

// StyleConfig describes one semantic style. Colours are either a plain
// string or a map with light and dark keys.
type StyleConfig struct {
	Foreground    interface{} `yaml:"foreground,omitempty"`
	Background    interface{} `yaml:"background,omitempty"`
	Bold          *bool       `yaml:"bold,omitempty"`
	Italic        *bool       `yaml:"italic,omitempty"`
	Underline     *bool       `yaml:"underline,omitempty"`
	Strikethrough *bool       `yaml:"strikethrough,omitempty"`
}

// Theme maps semantic output types to lipgloss styles.
type Theme struct {
	Name        string
	Description string
	styles      map[string]lipgloss.Style
}

var themes = map[string][]byte{
	"default": embedded.DefaultThemeData,
	"dark":    embedded.DarkThemeData,
	"light":   embedded.LightThemeData,
	Plain:     embedded.PlainThemeData,
}

// Names returns the embedded theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the named theme. Unknown names and broken theme files fall
// back to the plain theme; Load never fails.
func Load(name string) *Theme {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = Plain
	}

	data, ok := themes[normalized]
	if !ok {
		logger.Debug("Unknown theme requested, using plain theme", "theme", name, "available", Names())
		return plainTheme()
	}

	t, err := Parse(data)
	if err != nil {
		logger.Error("Failed to load theme", "theme", normalized, "error", err)
		return plainTheme()
	}
	return t
}

// Parse builds a theme from YAML data.
func Parse(data []byte) (*Theme, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	t := &Theme{Name: f.Name, Description: f.Description, styles: make(map[string]lipgloss.Style, len(f.Styles))}
	for semantic, cfg := range f.Styles {
		t.styles[semantic] = createStyle(cfg)
	}
	return t, nil
}

func plainTheme() *Theme {
	return &Theme{Name: Plain, styles: map[string]lipgloss.Style{}}
}

// GetStyle implements output.StyleProvider. Semantics without a configured
// style render unchanged.
func (t *Theme) GetStyle(semantic string) output.TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// IsAvailable implements output.StyleProvider. The plain theme reports false
// so printers skip styling entirely.
func (t *Theme) IsAvailable() bool {
	return t != nil && t.Name != Plain
}

// List renders items as a numbered list with the theme's enumerator style.
func (t *Theme) List(items []string) string {
	l := list.New().Enumerator(list.Arabic)
	if style, ok := t.styles["list"]; ok {
		l = l.EnumeratorStyle(style)
	}
	for _, item := range items {
		l.Item(item)
	}
	return l.String()
}

func createStyle(cfg StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if color := parseColor(cfg.Foreground); color != nil {
		style = style.Foreground(color)
	}
	if color := parseColor(cfg.Background); color != nil {
		style = style.Background(color)
	}
	if cfg.Bold != nil && *cfg.Bold {
		style = style.Bold(true)
	}
	if cfg.Italic != nil && *cfg.Italic {
		style = style.Italic(true)
	}
	if cfg.Underline != nil && *cfg.Underline {
		style = style.Underline(true)
	}
	if cfg.Strikethrough != nil && *cfg.Strikethrough {
		style = style.Strikethrough(true)
	}
	return style
}

func parseColor(value interface{}) lipgloss.TerminalColor {
	switch v := value.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}
