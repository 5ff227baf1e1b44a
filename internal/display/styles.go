package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for game display
type Styles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Taken     lipgloss.Style
	Border    lipgloss.Style
	Category  lipgloss.Style
	Question  lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Money     lipgloss.Style
	Winner    lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles creates styles bound to a lipgloss renderer. When color is
// false the renderer is forced to the ASCII profile so output carries no
// escape sequences.
func NewStyles(r *lipgloss.Renderer, color bool) *Styles {
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true).
			Padding(0, 2).
			Align(lipgloss.Center),
		Cell: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Padding(0, 2).
			Align(lipgloss.Center),
		Taken: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Border: r.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")),
		Category: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Question: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Money: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Separator: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
