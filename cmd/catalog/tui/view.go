package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/talhanuhuymaz/Renart-Case/internal/client"
	"github.com/talhanuhuymaz/Renart-Case/internal/view"
)

// View renders the current display state.
func (m Model) View() string {
	title := m.styles.Title.Render("Product List")

	switch m.phase {
	case phaseLoading:
		return title + "\n" + m.spinner.View() + " Loading products...\n"
	case phaseError:
		body := m.styles.ErrorMsg.Render("Failed to load products. Please try again later.")
		help := m.styles.Help.Render("r retry • q quit")
		return title + "\n" + body + "\n" + help + "\n"
	case phaseEmpty:
		return title + "\n" + "No products available at the moment.\n"
	default:
		return title + "\n" + m.renderCatalog() + "\n"
	}
}

// renderCatalog renders the visible page of cards plus the progress bar.
func (m Model) renderCatalog() string {
	end := m.list.Index + m.list.Visible
	if end > len(m.products) {
		end = len(m.products)
	}

	cards := make([]string, 0, end-m.list.Index)
	for i := m.list.Index; i < end; i++ {
		cards = append(cards, m.renderCard(i))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	progress := m.renderProgress(lipgloss.Width(row))
	help := m.styles.Help.Render("←/→ page • tab focus • [/] color • y/w/r select • q quit")

	return row + "\n" + progress + "\n" + help
}

// renderCard renders a single product card.
func (m Model) renderCard(i int) string {
	p := m.products[i]
	card := m.cards[i]

	var b strings.Builder
	b.WriteString(m.styles.ProductName.Render(truncate(p.Name, cardWidth-2)))
	b.WriteString("\n")
	b.WriteString(m.styles.ImageURL.Render(truncate(p.Images[card.Selected], cardWidth-2)))
	b.WriteString("\n")
	b.WriteString(m.styles.Price.Render("$" + view.FormatNumber(p.Price, 2) + " USD"))
	b.WriteString("\n")
	b.WriteString(renderSwatches(card))
	b.WriteString("\n")
	b.WriteString(m.styles.ColorLabel.Render(view.ColorDisplayName(card.Selected)))
	b.WriteString("\n")
	b.WriteString(m.renderRating(p))

	style := m.styles.Card
	if i == m.focused {
		style = m.styles.FocusedCard
	}
	return style.Render(b.String())
}

// renderSwatches renders one colored dot per variant, marking the selection.
func renderSwatches(card view.CardState) string {
	var b strings.Builder
	for i, key := range card.ColorKeys {
		if i > 0 {
			b.WriteString(" ")
		}
		if key == card.Selected {
			b.WriteString(SwatchStyle(key).Render("●"))
		} else {
			b.WriteString(SwatchStyle(key).Render("○"))
		}
	}
	return b.String()
}

// renderRating renders the star row filled to the rating fraction.
func (m Model) renderRating(p client.Product) string {
	fill := view.StarFill(p.PopularityOutOf5)
	filled := int(fill*5 + 0.5)
	if filled > 5 {
		filled = 5
	}

	stars := m.styles.Stars.Render(strings.Repeat("★", filled)) +
		m.styles.StarsDim.Render(strings.Repeat("★", 5-filled))
	return stars + " " + view.FormatNumber(p.PopularityOutOf5, 1) + "/5"
}

// renderProgress renders the scroll progress bar under the list.
func (m Model) renderProgress(width int) string {
	if width < 10 {
		width = 10
	}
	filled := int(m.list.Progress() * float64(width))
	if filled > width {
		filled = width
	}
	return m.styles.ProgressFill.Render(strings.Repeat("─", filled)) +
		m.styles.ProgressRail.Render(strings.Repeat("─", width-filled))
}

// truncate shortens a string to at most n cells with an ellipsis.
func truncate(s string, n int) string {
	if n <= 1 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
