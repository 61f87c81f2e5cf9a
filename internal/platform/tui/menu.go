package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/menu"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle     = lipgloss.NewStyle().Padding(0, 1)
	menuCursorStyle   = menuItemStyle.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuSelectedStyle = menuItemStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	menuHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderMenu draws the customization menu: one row per category, the cursor
// in reverse video and selected items highlighted green.
func RenderMenu(p *menu.Picker, best float64, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F L A P P Y"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick one of each", width))
	b.WriteString("\n\n")

	row, col := p.Cursor()
	for r, items := range flappy.Catalog {
		cells := make([]string, 0, len(items)+1)
		cells = append(cells, fmt.Sprintf("%-11s", menu.CategoryLabels[r]))
		for c, id := range items {
			style := menuItemStyle
			switch {
			case r == row && c == col:
				style = menuCursorStyle
			case p.IsSelected(id):
				style = menuSelectedStyle
			}
			label := menu.Label(id)
			if p.IsSelected(id) {
				label = "✓ " + label
			}
			cells = append(cells, style.Render(label))
		}
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, cells...), width))
		b.WriteString("\n\n")
	}

	if best > 0 {
		b.WriteString(centerText("Best: "+flappy.FormatScore(best), width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(menuHintStyle.Render("Arrows: move  |  Enter/Space: select  |  Q: quit"), width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
