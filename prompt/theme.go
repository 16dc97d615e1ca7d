// Package prompt provides the inline widgets the menu toolkit drives: a
// selection list, a yes/no confirmation, and a line input. Widgets render in
// the normal terminal flow (no alternate screen), redraw themselves in place
// between keypresses, and clean up after themselves on exit.
package prompt

import "github.com/charmbracelet/lipgloss"

// Theme provides the styles widgets render with.
type Theme struct {
	Prompt   lipgloss.Style // the prompt line
	Cursor   lipgloss.Style // the selection marker
	Item     lipgloss.Style // an unselected, enabled item
	Selected lipgloss.Style // the item under the cursor
	Disabled lipgloss.Style // an unselectable item
	Chosen   lipgloss.Style // a confirmed answer
	Help     lipgloss.Style // key hints like (y/n)
}

// DefaultTheme is a colored theme in the spirit of the rest of the toolkit:
// bold prompts, a green marker, cyan for the active item.
var DefaultTheme = Theme{
	Prompt:   lipgloss.NewStyle().Bold(true),
	Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	Item:     lipgloss.NewStyle(),
	Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	Chosen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

// NoColor renders everything unstyled. Useful for tests and dumb terminals.
var NoColor = Theme{}
