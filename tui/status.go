package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// roomDisplayName derives a human-readable name from a room ID.
// "dragons_den" -> "Dragons Den", "audience_hall" -> "Audience Hall".
func roomDisplayName(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

// renderStatusBar produces a full-width inverted status line showing the
// current room, exits, injuries, enemies left, inventory and turn count.
// The bar turns red while a fight is waiting for the player.
func (m Model) renderStatusBar() string {
	w := m.engine.World
	p := w.Player

	dirs := p.Room.Directions()
	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, string(d))
	}

	left := fmt.Sprintf(" %s | Exits: %s | Inj: %d/%d | Enemies: %d",
		roomDisplayName(p.Room.ID), strings.Join(names, ","),
		p.Injuries, p.MaxInjuries, len(w.Enemies))
	if m.engine.InCombat() {
		left = " FIGHT |" + left
	}
	right := fmt.Sprintf("T:%d ", m.engine.Turn)

	// Show inventory items if they fit, otherwise just count.
	if inv := p.Items.Names(); len(inv) > 0 {
		candidate := fmt.Sprintf("Inv: %s | T:%d ", strings.Join(inv, ", "), m.engine.Turn)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d | T:%d ", len(inv), m.engine.Turn)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	if m.engine.InCombat() {
		return styleStatusFight.Width(m.width).Render(bar)
	}
	return styleStatusBar.Width(m.width).Render(bar)
}
