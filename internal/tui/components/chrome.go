// Package components provides reusable Bubbletea UI building blocks for
// the tppg TUI. These are render-only helpers (not tea.Model) used by
// the main TUI models to compose views.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pgrowth/tppgUtil/internal/tui/styles"
	"github.com/pgrowth/tppgUtil/internal/util"
)

// Header renders the application header bar. The context string on the
// right identifies the Creator application being browsed.
//
//	┌──────────────────────────────────────────┐
//	│  tppg > records > All_Leads  pgrowth/crm │
//	└──────────────────────────────────────────┘
func Header(width int, breadcrumb string, context string) string {
	if width < 10 {
		return ""
	}

	leftStyle := styles.Title.Foreground(styles.Primary)
	left := leftStyle.Render("tppg")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	right := ""
	if context != "" {
		right = styles.Subtitle.Render(context)
	}

	// Calculate spacing between left and right.
	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	innerWidth := width - 4 // account for padding
	gap := max(innerWidth-leftLen-rightLen, 1)

	content := left + strings.Repeat(" ", gap) + right

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(content)
}

// KeyBinding represents a single key binding for the footer.
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer renders the key binding help bar at the bottom of the screen.
func Footer(width int, bindings []KeyBinding) string {
	if width < 10 || len(bindings) == 0 {
		return ""
	}

	sep := styles.KeySepStyle.Render("  ")
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = styles.FormatKeyBinding(b.Key, b.Desc)
	}

	content := strings.Join(parts, sep)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(styles.DimGray).
		Render(content)
}

// StatusBar renders a status message line between the content and footer.
// Long messages are shortened so the bar never wraps.
func StatusBar(width int, message string, isError bool) string {
	if message == "" {
		return ""
	}

	style := styles.MutedText
	if isError {
		style = styles.ErrorText
	}

	message = util.Ellipsize(message, max(width-4, 1))

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(style.Render(message))
}
