// Package tui implements the terminal catalog browser.
// It renders the normalized catalog as a horizontally paged card list with
// per-card color carousels, star ratings, and a scroll progress bar.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/talhanuhuymaz/Renart-Case/internal/view"
)

// Styles holds the lipgloss styles for the catalog browser.
type Styles struct {
	Title        lipgloss.Style
	Card         lipgloss.Style
	FocusedCard  lipgloss.Style
	ProductName  lipgloss.Style
	Price        lipgloss.Style
	ColorLabel   lipgloss.Style
	Stars        lipgloss.Style
	StarsDim     lipgloss.Style
	ImageURL     lipgloss.Style
	ErrorMsg     lipgloss.Style
	Help         lipgloss.Style
	ProgressFill lipgloss.Style
	ProgressRail lipgloss.Style
}

// DefaultStyles returns the default catalog browser styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(cardWidth),
		FocusedCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(view.SwatchColor("yellow"))).
			Padding(0, 1).
			Width(cardWidth),
		ProductName: lipgloss.NewStyle().Bold(true),
		Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("122")),
		ColorLabel:  lipgloss.NewStyle().Faint(true),
		Stars:       lipgloss.NewStyle().Foreground(lipgloss.Color(view.SwatchColor("yellow"))),
		StarsDim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		ImageURL: lipgloss.NewStyle().
			Faint(true).
			MaxHeight(1),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			MarginBottom(1),
		Help: lipgloss.NewStyle().
			Faint(true).
			MarginTop(1),
		ProgressFill: lipgloss.NewStyle().Foreground(lipgloss.Color(view.SwatchColor("yellow"))),
		ProgressRail: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// SwatchStyle returns a style rendering a swatch in the variant's color.
func SwatchStyle(key string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(view.SwatchColor(key)))
}
