package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleStatusFight = styleStatusBar.
				Background(lipgloss.Color("52"))

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleRoomDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleListing = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindRoomDesc lineKind = iota
	kindListing
	kindExits
	kindDanger
	kindSuccess
	kindSystem
	kindError
	kindTrace
)

var dangerPrefixes = []string{
	"You have been hit!",
	"You have been attacked!",
	"You have run across",
	"The enemy killed you!",
	"The soldier attacked you",
}

var successPrefixes = []string{
	"You win!",
	"You eliminated",
	"You have collected",
	"You have opened",
	"The chest is now open.",
}

var errorPrefixes = []string{
	"There is no",
	"This door is closed!",
	"This item is not",
	"This key cannot",
	"You cannot",
	"You do not have",
	"Your weapons are out",
	"I don't know what you mean",
	"Incorrect enemy name!",
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "Exits:"):
		return kindExits
	case line == "Contents of the room:", line == "Your inventory:", line == "Available commands:":
		return kindListing
	case hasAnyPrefix(line, dangerPrefixes):
		return kindDanger
	case hasAnyPrefix(line, successPrefixes):
		return kindSuccess
	case hasAnyPrefix(line, errorPrefixes):
		return kindError
	default:
		return kindRoomDesc
	}
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
