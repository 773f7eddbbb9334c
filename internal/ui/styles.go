package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorRed    = lipgloss.Color("#FF0000")
	colorYellow = lipgloss.Color("#FFFF00")
	colorCyan   = lipgloss.Color("#00FFFF")
	colorGray   = lipgloss.Color("#666666")
)

// styles regroupe les styles d'un renderer (un par flux de sortie).
type styles struct {
	info    lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	command lipgloss.Style
	skip    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		info:    r.NewStyle(),
		warning: r.NewStyle().Foreground(colorYellow),
		err:     r.NewStyle().Foreground(colorRed).Bold(true),
		command: r.NewStyle().Foreground(colorCyan),
		skip:    r.NewStyle().Foreground(colorGray),
	}
}
