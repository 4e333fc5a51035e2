package styles

// ThemeTokens defines the semantic color roles for the TUI.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string

	// Blocks maps vocabulary color names to hex colors.
	Blocks map[string]string
}

// BlockColor returns the hex color of a vocabulary block color name.
// Unknown names fall back to the text color.
func (t ThemeTokens) BlockColor(name string) string {
	if hex, ok := t.Blocks[name]; ok {
		return hex
	}
	return t.Text
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// ThemeByName returns the named theme, or the default theme when unknown.
func ThemeByName(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return DefaultTheme
}
